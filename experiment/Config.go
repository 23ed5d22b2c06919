package experiment

import (
	"fmt"

	"github.com/Axect/RLAI/environment"
	"github.com/Axect/RLAI/experiment/tracker"
	"github.com/Axect/RLAI/policy"
	"github.com/Axect/RLAI/predictor"
	"github.com/Axect/RLAI/value"
)

// Config represents a configuration of an experiment. The predictor
// type determines whether a MonteCarlo or a TemporalDifference
// experiment is created.
type Config struct {
	Episodes  int
	MaxSteps  int // 0 means no limit
	Seed      uint64
	Predictor predictor.Config
	Policy    policy.Config
}

// Validate returns an error describing whether or not the configuration
// is valid
func (c Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("validate: episodes must be positive, got %d",
			c.Episodes)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("validate: max steps cannot be negative, got %d",
			c.MaxSteps)
	}
	if err := c.Predictor.Validate(); err != nil {
		return fmt.Errorf("validate: predictor: %v", err)
	}
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("validate: policy: %v", err)
	}
	return nil
}

// Create creates the experiment described by c on env. Both the
// predictor and the policy start with every state of env valued at 0.
func Create[S comparable, A any](c Config, env environment.Environment[S, A],
	t ...tracker.Tracker[S]) (Experiment[S], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	table := value.New(env.States(), 0.0)
	p, err := policy.Create[S, A](c.Policy, env, table, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	switch c.Predictor.Type {
	case predictor.EveryVisitMCType:
		pred, err := predictor.CreateEveryVisitMC(c.Predictor, table.Clone())
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		return NewMonteCarlo(env, pred, p, c.Episodes, c.MaxSteps, t...), nil

	case predictor.TD0Type:
		pred, err := predictor.CreateTD0(c.Predictor, table.Clone())
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		return NewTemporalDifference(env, pred, p, c.Episodes, c.MaxSteps,
			t...), nil
	}

	panic(fmt.Sprintf("create: no such predictor type %v", c.Predictor.Type))
}
