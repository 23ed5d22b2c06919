// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"
	"io"

	"github.com/Axect/RLAI/environment"
	"github.com/Axect/RLAI/experiment/checkpointer"
	"github.com/Axect/RLAI/experiment/tracker"
	"github.com/Axect/RLAI/mdp"
	"github.com/Axect/RLAI/policy"
	ts "github.com/Axect/RLAI/timestep"
	"github.com/Axect/RLAI/utils/progressbar"
	"github.com/Axect/RLAI/value"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments train a value predictor on episodes generated by a policy
// which is refreshed with the predictor's values after each update. The
// Run() method will run all episodes of the experiment, while the
// RunEpisode() function will run a single episode.
//
// In order to save data, Experiments use Trackers. Each episode is sent
// to the Trackers as a sequence of TimeSteps. The Tracker then
// determines which data it caches and saves. New Trackers can be
// registered with an Experiment through the constructor or through an
// Experiment's Register() function.
type Experiment[S comparable] interface {
	Run() error
	RunEpisode() (ts.Episode[S], error)

	// Evaluate permanently disables exploration and returns a single
	// episode generated by the resulting policy without learning
	Evaluate() (ts.Episode[S], error)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment.
	Register(t tracker.Tracker[S])

	// AddCheckpointer adds a checkpointer called at the end of each
	// episode
	AddCheckpointer(c checkpointer.Checkpointer)

	// SetProgress sets the writer to which a progress bar is displayed
	// while running
	SetProgress(w io.Writer)

	// ValueFunction returns the learned values
	ValueFunction() value.Table[S]
}

// base implements the functionality shared by all experiments
type base[S comparable, A any] struct {
	env      environment.Environment[S, A]
	policy   policy.ValuePolicy[S, A]
	gamma    float64
	episodes int
	maxSteps int

	completed     int
	trackers      []tracker.Tracker[S]
	checkpointers []checkpointer.Checkpointer
	progress      io.Writer
}

func newBase[S comparable, A any](env environment.Environment[S, A],
	p policy.ValuePolicy[S, A], gamma float64, episodes, maxSteps int,
	t []tracker.Tracker[S]) base[S, A] {
	return base[S, A]{
		env:      env,
		policy:   p,
		gamma:    gamma,
		episodes: episodes,
		maxSteps: maxSteps,
		trackers: t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (b *base[S, A]) Register(t tracker.Tracker[S]) {
	b.trackers = append(b.trackers, t)
}

// AddCheckpointer adds a checkpointer called at the end of each episode
func (b *base[S, A]) AddCheckpointer(c checkpointer.Checkpointer) {
	b.checkpointers = append(b.checkpointers, c)
}

// SetProgress sets the writer to which a progress bar is displayed
// while running. If w is nil, no progress is displayed.
func (b *base[S, A]) SetProgress(w io.Writer) {
	b.progress = w
}

// Completed returns the number of finished training episodes
func (b *base[S, A]) Completed() int {
	return b.completed
}

// Save saves all the data cached by the Trackers to disk
func (b *base[S, A]) Save() error {
	for _, t := range b.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// Evaluate permanently disables exploration and rolls out one episode
// with the resulting policy. Without a step limit, the episode is cut off
// after as many visits as the environment has states, since a longer
// greedy episode must revisit a state.
func (b *base[S, A]) Evaluate() (ts.Episode[S], error) {
	b.policy.DisableExploration()

	steps := b.maxSteps
	if steps <= 0 {
		steps = len(b.env.States())
	}
	ep, err := mdp.Rollout[S, A](b.env, b.policy, b.env.Start(), steps)
	if err != nil {
		return ep, fmt.Errorf("evaluate: %w", err)
	}
	return ep, nil
}

// finish tracks a finished training episode and checkpoints
func (b *base[S, A]) finish(ep ts.Episode[S]) error {
	for _, step := range ep.TimeSteps(b.gamma) {
		for _, t := range b.trackers {
			t.Track(step)
		}
	}

	b.completed++
	for _, c := range b.checkpointers {
		if err := c.Checkpoint(b.completed); err != nil {
			return fmt.Errorf("checkpoint: %v", err)
		}
	}
	return nil
}

// run runs episodes until all episodes of the experiment have finished,
// displaying progress if a progress writer has been set
func (b *base[S, A]) run(runEpisode func() (ts.Episode[S], error)) error {
	var bar *progressbar.ManualProgressBar
	if b.progress != nil {
		bar = progressbar.NewManualProgressBar(b.progress, 40, b.episodes)
	}

	for b.completed < b.episodes {
		ep, err := runEpisode()
		if err != nil {
			return fmt.Errorf("run: episode %d: %w", b.completed+1, err)
		}

		if bar != nil {
			bar.Increment()
			bar.SetMessage(fmt.Sprintf("Episode length: %d", ep.Len()))
			if err := bar.Display(); err != nil {
				return fmt.Errorf("run: %v", err)
			}
		}
	}

	if bar != nil {
		return bar.Close()
	}
	return nil
}
