// Package timestep implements timesteps, transitions, and episodes of the
// agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment. The
// Reward is the reward received for acting in State, and Number is the
// index of the timestep within its episode, starting at 0.
type TimeStep[S any] struct {
	StepType
	Reward   float64
	Discount float64
	State    S
	Number   int
}

// New returns a new TimeStep
func New[S any](t StepType, r, d float64, s S, n int) TimeStep[S] {
	return TimeStep[S]{t, r, d, s, n}
}

// First returns whether a TimeStep is the first in an episode
func (t *TimeStep[S]) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t *TimeStep[S]) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t *TimeStep[S]) Last() bool {
	return t.StepType == Last
}

func (t TimeStep[S]) String() string {
	str := "TimeStep | Type: %v  |  State: %v  |  Reward:  %.2f  |  " +
		"Discount: %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.State, t.Reward, t.Discount,
		t.Number)
}
