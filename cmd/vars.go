package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Axect/RLAI/environment/envconfig"
	"github.com/Axect/RLAI/policy"
	"github.com/Axect/RLAI/stepsize"
)

var (
	flags       *Flags = DefaultFlags()
	savePath    string
	seed        uint64
	envName     string
	chainLength int
	randomStart bool

	episodes        int
	maxSteps        int
	checkpointEvery int

	gamma        float64
	policyType   string
	epsilon      float64
	stepsizeType string
	stepsizeC    float64
	stepsizeEta  float64
	noColor      bool
)

// Default stepsize constant of each command when --stepsize-c is unset
var defaultStepsizeC = map[string]float64{
	"mc":  1.0,
	"td0": 10.0,
}

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Seed for the policy and the starting state")
	cmd.PersistentFlags().StringVar(&envName, "env", string(flags.Environment), "Environment, one of GridWorld or Chain")
	cmd.PersistentFlags().IntVar(&chainLength, "chain-length", flags.ChainLength, "Number of states of the Chain")
	cmd.PersistentFlags().BoolVar(&randomStart, "random-start", flags.RandomStart, "Start GridWorld episodes in a random non-terminal cell")

	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes")
	cmd.PersistentFlags().IntVar(&maxSteps, "max-steps", flags.MaxSteps, "Maximum number of steps per episode, 0 for no limit")
	cmd.PersistentFlags().IntVar(&checkpointEvery, "checkpoint-every", flags.CheckpointEvery, "Checkpoint the value function every this many episodes, 0 to disable")

	cmd.PersistentFlags().Float64Var(&gamma, "gamma", flags.Gamma, "Discount factor")
	cmd.PersistentFlags().StringVar(&policyType, "policy", string(flags.Policy), "Policy, one of Greedy or EGreedy")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Exploration probability of the EGreedy policy")
	cmd.PersistentFlags().StringVar(&stepsizeType, "stepsize", string(flags.Stepsize), "Stepsize schedule, one of Constant, InverseTime, Power or Count")
	cmd.PersistentFlags().Float64Var(&stepsizeC, "stepsize-c", flags.StepsizeC, "Stepsize constant (default 1 for mc and 10 for td0)")
	cmd.PersistentFlags().Float64Var(&stepsizeEta, "stepsize-eta", flags.StepsizeEta, "Exponent of the Power stepsize schedule")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", !flags.Colors, "Print the value grid without colors")
}

func UpdateFlags(cmd *cobra.Command) {
	flags.SavePath = savePath
	flags.Seed = seed
	flags.Environment = envconfig.EnvName(envName)
	flags.ChainLength = chainLength
	flags.RandomStart = randomStart

	flags.Episodes = episodes
	flags.MaxSteps = maxSteps
	flags.CheckpointEvery = checkpointEvery

	flags.Gamma = gamma
	flags.Policy = policy.Type(policyType)
	flags.Epsilon = epsilon
	flags.Stepsize = stepsize.Type(stepsizeType)
	flags.StepsizeC = stepsizeC
	if c, ok := defaultStepsizeC[cmd.Name()]; ok && !cmd.Flags().Changed("stepsize-c") {
		flags.StepsizeC = c
	}
	flags.StepsizeEta = stepsizeEta
	flags.Colors = !noColor
}
