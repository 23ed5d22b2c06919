// Package policy implements policies which select actions by a one-step
// lookahead on a tabular state-value function.
//
// A policy holds its own copy of a value table. The table is not
// updated when a predictor learns; callers must push new values into the
// policy with UpdateValueFunction.
package policy

import (
	"github.com/Axect/RLAI/mdp"
	"github.com/Axect/RLAI/value"
)

// ValuePolicy is a policy acting greedily, or nearly so, with respect to
// a value table
type ValuePolicy[S comparable, A any] interface {
	mdp.Policy[S, A]

	// UpdateValueFunction replaces the policy's table with a copy of t
	UpdateValueFunction(t value.Table[S])

	// ValueFunction returns the policy's table
	ValueFunction() value.Table[S]

	// DisableExploration permanently turns off any exploration
	DisableExploration()
}

// lookahead returns the value of the successor of s under each action.
// Actions which have no successor have value 0.
func lookahead[S comparable, A any](m mdp.MDP[S, A], t value.Table[S], s S,
	actions []A) []float64 {
	values := make([]float64, len(actions))
	for i, a := range actions {
		if next, ok := m.Transition(s, a); ok {
			values[i] = t.Value(next)
		}
	}
	return values
}
