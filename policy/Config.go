package policy

import (
	"fmt"

	"github.com/Axect/RLAI/mdp"
	"github.com/Axect/RLAI/value"
)

// Type represents a type of policy
type Type string

const (
	GreedyType  Type = "Greedy"
	EGreedyType Type = "EGreedy"
)

// Config represents a configuration of a policy. Epsilon is only used
// by EGreedy policies.
type Config struct {
	Type
	Epsilon float64 `json:",omitempty"`
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	switch c.Type {
	case GreedyType:
		return nil

	case EGreedyType:
		if c.Epsilon < 0 || c.Epsilon > 1 {
			return fmt.Errorf("validate: epsilon must be in [0, 1], got %v",
				c.Epsilon)
		}
		return nil
	}
	return fmt.Errorf("validate: no such policy %q", c.Type)
}

// Create creates the policy described by c on m, acting with respect to
// a copy of table
func Create[S comparable, A any](c Config, m mdp.MDP[S, A],
	table value.Table[S], seed uint64) (ValuePolicy[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	if c.Type == GreedyType {
		return NewGreedy(m, table, seed), nil
	}
	return NewEGreedy(m, table, c.Epsilon, seed), nil
}
