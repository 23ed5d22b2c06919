package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/Axect/RLAI/environment"
	"github.com/Axect/RLAI/environment/chain"
	"github.com/Axect/RLAI/environment/envconfig"
	"github.com/Axect/RLAI/environment/gridworld"
	"github.com/Axect/RLAI/experiment"
	"github.com/Axect/RLAI/experiment/checkpointer"
	"github.com/Axect/RLAI/experiment/tracker"
	"github.com/Axect/RLAI/predictor"
	"github.com/Axect/RLAI/value"
)

// renderer prints a learned value table
type renderer[S comparable] func(w io.Writer, table value.Table[S],
	colors bool) error

// run learns on the environment selected by the flags with predictor p
func run(p predictor.Type) error {
	c, err := flags.EnvConfig()
	if err != nil {
		return fmt.Errorf("run: %v", err)
	}

	switch c.Environment {
	case envconfig.GridWorld:
		g, err := c.CreateGridWorld(flags.Seed)
		if err != nil {
			return fmt.Errorf("run: %v", err)
		}
		task := func(tr *tracker.Trajectory[gridworld.Cell]) {
			tr.SetTask(g.GoalCell(), g.TerminalCells())
		}
		return runOn[gridworld.Cell, gridworld.Action](p, g, g.Render, task)

	case envconfig.Chain:
		ch, err := c.CreateChain()
		if err != nil {
			return fmt.Errorf("run: %v", err)
		}
		return runOn[int, chain.Action](p, ch, renderChain, nil)
	}
	return fmt.Errorf("run: no such environment %q", c.Environment)
}

// renderChain prints one state value per line. Chains have no colored
// output.
func renderChain(w io.Writer, table value.Table[int], _ bool) error {
	for s := 0; s < len(table); s++ {
		if _, err := fmt.Fprintf(w, "V(%d) = %.4f\n", s, table.Value(s)); err != nil {
			return fmt.Errorf("renderChain: %v", err)
		}
	}
	return nil
}

// runOn runs an experiment with predictor p on env, saves every tracker
// under the save path and prints the final values using render. If task
// is not nil, it records the task of env in the trajectory.
func runOn[S comparable, A any](p predictor.Type,
	env environment.Environment[S, A], render renderer[S],
	task func(*tracker.Trajectory[S])) error {
	prefix := path.Join(flags.SavePath, string(p))

	returns := tracker.NewReturn[S](prefix + "_returns.bin")
	lengths := tracker.NewEpisodeLength[S](prefix + "_lengths.bin")
	trajectory := tracker.NewTrajectory[S](prefix + "_trajectory.json")
	if task != nil {
		task(trajectory)
	}
	chart := tracker.NewChart[S](fmt.Sprintf("%v on %v", p, flags.Environment),
		prefix+"_chart.html")

	e, err := experiment.Create[S, A](flags.ExperimentConfig(p), env, returns,
		lengths, trajectory, chart)
	if err != nil {
		return fmt.Errorf("run: %v", err)
	}
	e.SetProgress(os.Stdout)

	if flags.CheckpointEvery > 0 {
		check, err := checkpointer.NewNStep(flags.CheckpointEvery,
			e.ValueFunction(), checkpointer.FilenameEnumerator(0,
				prefix+"_values", ".bin"))
		if err != nil {
			return fmt.Errorf("run: %v", err)
		}
		e.AddCheckpointer(check)
	}

	if err := e.Run(); err != nil {
		return fmt.Errorf("run: %v", err)
	}

	ep, err := e.Evaluate()
	if err != nil {
		return fmt.Errorf("run: evaluation: %v", err)
	}
	trajectory.SetEvaluation(ep)

	if err := render(os.Stdout, e.ValueFunction(), flags.Colors); err != nil {
		return fmt.Errorf("run: %v", err)
	}
	if err := e.ValueFunction().Save(prefix + "_values.bin"); err != nil {
		return fmt.Errorf("run: %v", err)
	}
	if err := e.Save(); err != nil {
		return fmt.Errorf("run: %v", err)
	}

	log.Printf("%v returns: %v", p, tracker.Summarize(returns.Data()))
	log.Printf("%v episode lengths: %v", p, tracker.Summarize(lengths.Data()))
	log.Printf("%v evaluation: %v steps, return %.3f", p, ep.Len(),
		ep.Return(flags.Gamma))
	return nil
}
