package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/Axect/RLAI/environment/envconfig"
	"github.com/Axect/RLAI/experiment"
	"github.com/Axect/RLAI/policy"
	"github.com/Axect/RLAI/predictor"
	"github.com/Axect/RLAI/stepsize"
)

// Flags holds the resolved command line configuration of a run
type Flags struct {
	SavePath string
	Seed     uint64

	Environment envconfig.EnvName
	ChainLength int
	RandomStart bool

	Episodes        int
	MaxSteps        int
	CheckpointEvery int

	Gamma       float64
	Policy      policy.Type
	Epsilon     float64
	Stepsize    stepsize.Type
	StepsizeC   float64
	StepsizeEta float64
	Colors      bool
}

// DefaultFlags returns the defaults used by both the mc and td0
// commands. Each command overrides StepsizeC with its own default.
func DefaultFlags() *Flags {
	return &Flags{
		SavePath:        "results",
		Seed:            42,
		Environment:     envconfig.GridWorld,
		ChainLength:     5,
		RandomStart:     false,
		Episodes:        500,
		MaxSteps:        1000,
		CheckpointEvery: 100,
		Gamma:           0.95,
		Policy:          policy.EGreedyType,
		Epsilon:         0.1,
		Stepsize:        stepsize.InverseTimeType,
		StepsizeC:       1.0,
		StepsizeEta:     0.5,
		Colors:          true,
	}
}

// Record writes the flags to config.json under the save path
func (f *Flags) Record() error {
	if err := os.MkdirAll(f.SavePath, 0o755); err != nil {
		return fmt.Errorf("record: %v", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("record: %v", err)
	}
	if err := os.WriteFile(path.Join(f.SavePath, "config.json"), data,
		0o644); err != nil {
		return fmt.Errorf("record: %v", err)
	}
	return nil
}

// EnvConfig returns the configuration of the environment to run on
func (f *Flags) EnvConfig() (envconfig.Config, error) {
	switch f.Environment {
	case envconfig.GridWorld:
		c := envconfig.DefaultGridWorld()
		c.RandomStart = f.RandomStart
		return c, nil

	case envconfig.Chain:
		return envconfig.DefaultChain(f.ChainLength), nil
	}
	return envconfig.Config{}, fmt.Errorf("envConfig: no such environment %q",
		f.Environment)
}

// ExperimentConfig returns the configuration of an experiment using the
// given predictor
func (f *Flags) ExperimentConfig(p predictor.Type) experiment.Config {
	return experiment.Config{
		Episodes: f.Episodes,
		MaxSteps: f.MaxSteps,
		Seed:     f.Seed,
		Predictor: predictor.Config{
			Type:  p,
			Gamma: f.Gamma,
			Stepsize: stepsize.Config{
				Type: f.Stepsize,
				C:    f.StepsizeC,
				Eta:  f.StepsizeEta,
			},
		},
		Policy: policy.Config{
			Type:    f.Policy,
			Epsilon: f.Epsilon,
		},
	}
}
