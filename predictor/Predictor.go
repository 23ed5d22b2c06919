// Package predictor implements tabular state-value prediction algorithms.
//
// A predictor owns a value table and a stepsize scheduler. Data is loaded
// into the predictor (an episode or a single transition) and then
// consumed by a call to Step, which updates the table in place.
package predictor

import (
	"errors"

	"github.com/Axect/RLAI/value"
)

var (
	// ErrNoEpisode is returned when a Monte Carlo predictor is stepped
	// without a non-empty episode loaded
	ErrNoEpisode = errors.New("step: no episode loaded")

	// ErrNoTransition is returned when a TD predictor is stepped without
	// a transition loaded
	ErrNoTransition = errors.New("step: no transition loaded")
)

// Predictor estimates the state-value function of some fixed policy
type Predictor[S comparable] interface {
	// Step consumes the loaded data and updates the value table
	Step() error

	// ValueFunction returns the predictor's value table. The returned
	// table is the predictor's own storage and changes with each call to
	// Step.
	ValueFunction() value.Table[S]
}

// TdErrorer is a Predictor that can compute the TD error of a transition
// without updating its value table
type TdErrorer[S comparable] interface {
	Predictor[S]
	TdError(s S, r float64, next S, ok bool) float64
}
