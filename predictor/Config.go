package predictor

import (
	"fmt"

	"github.com/Axect/RLAI/stepsize"
	"github.com/Axect/RLAI/value"
)

// Type represents a type of value predictor
type Type string

const (
	EveryVisitMCType Type = "EveryVisitMC"
	TD0Type          Type = "TD0"
)

// Config represents a configuration of a value predictor
type Config struct {
	Type
	Gamma    float64 // discount factor
	Stepsize stepsize.Config
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Type != EveryVisitMCType && c.Type != TD0Type {
		return fmt.Errorf("validate: no such predictor %q", c.Type)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("validate: discount must be in [0, 1], got %v",
			c.Gamma)
	}
	if err := c.Stepsize.Validate(); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	return nil
}

// CreateEveryVisitMC creates the EveryVisitMC predictor described by c,
// learning the values in table
func CreateEveryVisitMC[S comparable](c Config,
	table value.Table[S]) (*EveryVisitMC[S], error) {
	if c.Type != EveryVisitMCType {
		return nil, fmt.Errorf("createEveryVisitMC: config describes %v", c.Type)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createEveryVisitMC: %v", err)
	}

	scheduler, err := stepsize.Create[S](c.Stepsize)
	if err != nil {
		return nil, fmt.Errorf("createEveryVisitMC: %v", err)
	}
	return NewEveryVisitMC(table, scheduler, c.Gamma), nil
}

// CreateTD0 creates the TD0 predictor described by c, learning the
// values in table
func CreateTD0[S comparable](c Config, table value.Table[S]) (*TD0[S], error) {
	if c.Type != TD0Type {
		return nil, fmt.Errorf("createTD0: config describes %v", c.Type)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createTD0: %v", err)
	}

	scheduler, err := stepsize.Create[S](c.Stepsize)
	if err != nil {
		return nil, fmt.Errorf("createTD0: %v", err)
	}
	return NewTD0(table, scheduler, c.Gamma), nil
}
