package mdp

import (
	"errors"

	ts "github.com/Axect/RLAI/timestep"
)

// ErrNoAction is returned when a policy has no legal action to take in a
// state which the environment does not consider terminal
var ErrNoAction = errors.New("no action available")

// Rollout generates a single episode starting at start by repeatedly
// applying the action chosen by p until m reports no successor state.
// Every visited state is recorded together with the reward for the action
// taken there, including the final state whose transition ended the
// episode.
//
// If maxSteps > 0, the episode is truncated after maxSteps visits. If
// the policy has no action in a state, the episode so far is returned
// along with ErrNoAction.
func Rollout[S comparable, A any](m MDP[S, A], p Policy[S, A], start S,
	maxSteps int) (ts.Episode[S], error) {
	var episode ts.Episode[S]
	state := start

	for maxSteps <= 0 || len(episode) < maxSteps {
		action, ok := p.SelectAction(state)
		if !ok {
			return episode, ErrNoAction
		}

		next, ok, reward := Step(m, state, action)
		episode = append(episode, ts.Visit[S]{State: state, Reward: reward})
		if !ok {
			break
		}
		state = next
	}

	return episode, nil
}

// Simulate generates a single episode of the reward process starting at
// start. See Rollout.
func Simulate[S comparable, A any](r RewardProcess[S, A], start S,
	maxSteps int) (ts.Episode[S], error) {
	return Rollout[S, A](r, r.Policy(), start, maxSteps)
}
