// Package chain implements a deterministic chain environment
package chain

import (
	"fmt"

	"github.com/Axect/RLAI/environment"
)

// Action is an action in a Chain
type Action int

// Advance moves one state to the right
const Advance Action = 0

func (a Action) String() string {
	if a == Advance {
		return "Advance"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Chain is a chain of states 0, 1, ..., N-1 in which the only action
// moves one state to the right. State N-1 is terminal. Moving onto the
// terminal state is rewarded with 1, every other action with 0.
type Chain struct {
	environment.Starter[int]
	n int
}

// New returns a new Chain of n states starting in state 0
func New(n int) (*Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("new: chain must have at least one state, "+
			"got %d", n)
	}
	return &Chain{environment.NewSingleStarter(0), n}, nil
}

// Len returns the number of states in the chain
func (c *Chain) Len() int {
	return c.n
}

// States returns every state of the chain in order
func (c *Chain) States() []int {
	states := make([]int, c.n)
	for i := range states {
		states[i] = i
	}
	return states
}

// Actions returns the single action of the chain
func (c *Chain) Actions() []Action {
	return []Action{Advance}
}

// ActionsAt returns the single action of the chain, even in the terminal
// state
func (c *Chain) ActionsAt(int) []Action {
	return c.Actions()
}

// Terminal returns whether s is the last state of the chain
func (c *Chain) Terminal(s int) bool {
	return s == c.n-1
}

// Reward returns 1 if taking a in s reaches the terminal state and 0
// otherwise
func (c *Chain) Reward(s int, a Action) float64 {
	if next, ok := c.Transition(s, a); ok && c.Terminal(next) {
		return 1.0
	}
	return 0.0
}

// Transition returns s+1. If s is terminal or not in the chain, ok is
// false.
func (c *Chain) Transition(s int, a Action) (next int, ok bool) {
	if a != Advance || s < 0 || s >= c.n-1 {
		return 0, false
	}
	return s + 1, true
}
