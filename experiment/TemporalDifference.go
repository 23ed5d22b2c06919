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

// TemporalDifference is an Experiment which updates a TD(0) predictor
// online, after every step of the environment, and refreshes the policy
// with the updated values after each update.
type TemporalDifference[S comparable, A any] struct {
	base[S, A]
	predictor *predictor.TD0[S]
}

// NewTemporalDifference creates and returns a new TD experiment running
// the given number of episodes on env. If maxSteps > 0, episodes are
// cut off after maxSteps steps. Each Tracker in t receives the data of
// every training episode.
func NewTemporalDifference[S comparable, A any](env environment.Environment[S, A],
	pred *predictor.TD0[S], p policy.ValuePolicy[S, A], episodes, maxSteps int,
	t ...tracker.Tracker[S]) *TemporalDifference[S, A] {
	return &TemporalDifference[S, A]{
		base:      newBase(env, p, pred.Gamma(), episodes, maxSteps, t),
		predictor: pred,
	}
}

// RunEpisode runs a single training episode of the experiment
func (e *TemporalDifference[S, A]) RunEpisode() (ts.Episode[S], error) {
	var ep ts.Episode[S]
	state := e.env.Start()
	e.predictor.ResetCounter()

	for e.maxSteps <= 0 || ep.Len() < e.maxSteps {
		action, ok := e.policy.SelectAction(state)
		if !ok {
			return ep, fmt.Errorf("runEpisode: %w", mdp.ErrNoAction)
		}

		next, ok, reward := mdp.Step[S, A](e.env, state, action)
		ep = append(ep, ts.Visit[S]{State: state, Reward: reward})

		// 1. Update values with TD(0)
		e.predictor.LoadTransition(state, reward, next, ok)
		if err := e.predictor.Step(); err != nil {
			return ep, fmt.Errorf("runEpisode: %w", err)
		}

		// 2. Update the policy
		e.policy.UpdateValueFunction(e.predictor.ValueFunction())

		if !ok {
			break
		}
		state = next
	}

	return ep, e.finish(ep)
}

// Run runs all episodes of the experiment
func (e *TemporalDifference[S, A]) Run() error {
	return e.run(e.RunEpisode)
}

// ValueFunction returns the values learned by the predictor
func (e *TemporalDifference[S, A]) ValueFunction() value.Table[S] {
	return e.predictor.ValueFunction()
}
