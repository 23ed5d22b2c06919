// Package mdp defines the Markov Decision Process contract that every
// environment must satisfy, along with helpers for generating
// trajectories from an MDP and a policy.
package mdp

// MDP is a finite Markov Decision Process over states S and actions A.
//
// Transition is the sole termination signal of an MDP: an episode ends
// exactly when Transition reports no successor. Reward must be defined
// for every action, even those for which Transition reports no
// successor (e.g. moving off the edge of a grid).
type MDP[S comparable, A any] interface {
	// States returns every reachable state
	States() []S

	// Actions returns the full action vocabulary of the environment
	Actions() []A

	// ActionsAt returns the legal actions in state s. Terminal states
	// may return no actions.
	ActionsAt(s S) []A

	// Reward returns the immediate reward for taking action a in s
	Reward(s S, a A) float64

	// Transition returns the successor of s after taking action a. If
	// s is terminal or absorbing, ok is false.
	Transition(s S, a A) (next S, ok bool)
}

// Step takes action a in state s, returning both the reward and the
// successor state. Both are computed against the same (s, a).
func Step[S comparable, A any](m MDP[S, A], s S, a A) (next S,
	ok bool, reward float64) {
	reward = m.Reward(s, a)
	next, ok = m.Transition(s, a)
	return next, ok, reward
}

// Policy selects actions in states of an MDP. If no action is legal in
// a state, ok is false and the returned action must not be used.
type Policy[S comparable, A any] interface {
	SelectAction(s S) (a A, ok bool)
}

// RewardProcess is an MDP whose actions are chosen by a fixed Policy
type RewardProcess[S comparable, A any] interface {
	MDP[S, A]
	Policy() Policy[S, A]
}

type rewardProcess[S comparable, A any] struct {
	MDP[S, A]
	policy Policy[S, A]
}

// Bind fixes policy p on MDP m, returning the resulting RewardProcess
func Bind[S comparable, A any](m MDP[S, A], p Policy[S, A]) RewardProcess[S, A] {
	return &rewardProcess[S, A]{m, p}
}

// Policy returns the policy bound to the process
func (r *rewardProcess[S, A]) Policy() Policy[S, A] {
	return r.policy
}
