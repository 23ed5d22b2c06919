package experiment

import (
	"fmt"

	"github.com/Axect/RLAI/environment"
	"github.com/Axect/RLAI/experiment/tracker"
	"github.com/Axect/RLAI/mdp"
	"github.com/Axect/RLAI/policy"
	"github.com/Axect/RLAI/predictor"
	ts "github.com/Axect/RLAI/timestep"
	"github.com/Axect/RLAI/value"
)

// MonteCarlo is an Experiment which generates a full episode with its
// policy, then updates an every-visit Monte Carlo predictor on the
// episode and refreshes the policy with the updated values.
type MonteCarlo[S comparable, A any] struct {
	base[S, A]
	predictor *predictor.EveryVisitMC[S]
}

// NewMonteCarlo creates and returns a new Monte Carlo experiment running
// the given number of episodes on env. If maxSteps > 0, episodes are
// truncated after maxSteps states. Each Tracker in t receives the data
// of every training episode.
func NewMonteCarlo[S comparable, A any](env environment.Environment[S, A],
	pred *predictor.EveryVisitMC[S], p policy.ValuePolicy[S, A],
	episodes, maxSteps int, t ...tracker.Tracker[S]) *MonteCarlo[S, A] {
	return &MonteCarlo[S, A]{
		base:      newBase(env, p, pred.Gamma(), episodes, maxSteps, t),
		predictor: pred,
	}
}

// RunEpisode runs a single training episode of the experiment
func (m *MonteCarlo[S, A]) RunEpisode() (ts.Episode[S], error) {
	// 1. Generate an episode
	ep, err := mdp.Rollout[S, A](m.env, m.policy, m.env.Start(), m.maxSteps)
	if err != nil {
		return ep, fmt.Errorf("runEpisode: %w", err)
	}

	// 2. Update values with every-visit MC
	m.predictor.LoadEpisode(ep)
	if err := m.predictor.Step(); err != nil {
		return ep, fmt.Errorf("runEpisode: %w", err)
	}

	// 3. Update the policy
	m.policy.UpdateValueFunction(m.predictor.ValueFunction())

	return ep, m.finish(ep)
}

// Run runs all episodes of the experiment
func (m *MonteCarlo[S, A]) Run() error {
	return m.run(m.RunEpisode)
}

// ValueFunction returns the values learned by the predictor
func (m *MonteCarlo[S, A]) ValueFunction() value.Table[S] {
	return m.predictor.ValueFunction()
}
