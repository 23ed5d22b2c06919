package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Axect/RLAI/environment/envconfig"
	"github.com/Axect/RLAI/environment/gridworld"
	"github.com/Axect/RLAI/experiment/tracker"
	"github.com/Axect/RLAI/predictor"
	"github.com/Axect/RLAI/stepsize"
)

func TestDefaultFlagsAreValid(t *testing.T) {
	f := DefaultFlags()

	for _, p := range []predictor.Type{predictor.EveryVisitMCType,
		predictor.TD0Type} {
		c := f.ExperimentConfig(p)
		if err := c.Validate(); err != nil {
			t.Errorf("%v: %v", p, err)
		}
		if c.Predictor.Stepsize.Type != stepsize.InverseTimeType {
			t.Errorf("%v: stepsize %v", p, c.Predictor.Stepsize.Type)
		}
	}

	c, err := f.EnvConfig()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Error(err)
	}
}

func TestEnvConfig(t *testing.T) {
	f := DefaultFlags()
	f.Environment = envconfig.Chain
	f.ChainLength = 7

	c, err := f.EnvConfig()
	if err != nil {
		t.Fatal(err)
	}
	ch, err := c.CreateChain()
	if err != nil {
		t.Fatal(err)
	}
	if ch.Len() != 7 {
		t.Errorf("chain length %d, want 7", ch.Len())
	}

	f.Environment = "CliffWalk"
	if _, err := f.EnvConfig(); err == nil {
		t.Error("expected error for unknown environment")
	}
}

func TestRecord(t *testing.T) {
	f := DefaultFlags()
	f.SavePath = filepath.Join(t.TempDir(), "out")
	f.Episodes = 12

	if err := f.Record(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(f.SavePath, "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	var got Flags
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != *f {
		t.Errorf("recorded %+v, want %+v", got, *f)
	}
}

func TestStepsizeDefaultPerCommand(t *testing.T) {
	root := RootCommand()

	tests := []struct {
		args []string
		want float64
	}{
		{[]string{"mc"}, 1},
		{[]string{"td0"}, 10},
		{[]string{"td0", "--stepsize-c", "3"}, 3},
	}

	for _, test := range tests {
		sub, rest, err := root.Find(test.args)
		if err != nil {
			t.Fatal(err)
		}
		if err := sub.ParseFlags(rest); err != nil {
			t.Fatal(err)
		}
		UpdateFlags(sub)
		if flags.StepsizeC != test.want {
			t.Errorf("%v: stepsize c = %v, want %v", test.args,
				flags.StepsizeC, test.want)
		}
	}
}

func TestRunChain(t *testing.T) {
	saved := *flags
	defer func() { *flags = saved }()

	flags.SavePath = t.TempDir()
	flags.Environment = envconfig.Chain
	flags.ChainLength = 4
	flags.Episodes = 20
	flags.CheckpointEvery = 10
	flags.Colors = false

	if err := run(predictor.TD0Type); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"TD0_returns.bin", "TD0_lengths.bin",
		"TD0_trajectory.json", "TD0_chart.html", "TD0_values.bin",
		"TD0_values1.bin", "TD0_values2.bin"} {
		if _, err := os.Stat(filepath.Join(flags.SavePath, name)); err != nil {
			t.Errorf("missing %v: %v", name, err)
		}
	}
}

func TestRunGridWorldSavesTask(t *testing.T) {
	saved := *flags
	defer func() { *flags = saved }()

	flags.SavePath = t.TempDir()
	flags.Environment = envconfig.GridWorld
	flags.Episodes = 20
	flags.MaxSteps = 200
	flags.CheckpointEvery = 0
	flags.Colors = false

	if err := run(predictor.EveryVisitMCType); err != nil {
		t.Fatal(err)
	}

	data, err := tracker.LoadTrajectoryData[gridworld.Cell](
		filepath.Join(flags.SavePath, "EveryVisitMC_trajectory.json"))
	if err != nil {
		t.Fatal(err)
	}
	if data.Goal == nil || *data.Goal != (gridworld.Cell{X: 4, Y: 3}) {
		t.Errorf("goal = %v, want (4, 3)", data.Goal)
	}
	if len(data.Terminal) != 6 {
		t.Errorf("terminal cells = %v, want 6 cells", data.Terminal)
	}
	if len(data.First) == 0 || len(data.Evaluation) == 0 {
		t.Errorf("missing episodes: %+v", data)
	}
}
