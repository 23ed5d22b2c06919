// Package environment outlines the interfaces needed to implement
// concrete environments
package environment

import "github.com/Axect/RLAI/mdp"

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter[S any] interface {
	Start() S
}

// Environment is an MDP together with a distribution of starting states
type Environment[S comparable, A any] interface {
	mdp.MDP[S, A]
	Starter[S]
}

// SingleStarter always starts episodes in the same state
type SingleStarter[S any] struct {
	state S
}

// NewSingleStarter returns a new SingleStarter starting in state
func NewSingleStarter[S any](state S) SingleStarter[S] {
	return SingleStarter[S]{state}
}

// Start returns the starting state
func (s SingleStarter[S]) Start() S {
	return s.state
}
