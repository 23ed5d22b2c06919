// Package envconfig provides configuration structs for configuring
// environments with default parameters. Environment configurations in
// this package are JSON serializable.
package envconfig

import (
	"fmt"

	"github.com/Axect/RLAI/environment"
	"github.com/Axect/RLAI/environment/chain"
	"github.com/Axect/RLAI/environment/gridworld"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld EnvName = "GridWorld"
	Chain     EnvName = "Chain"
)

// Config implements a specific configuration of a specific environment.
// Rows, Cols, StartX, StartY, GoalX, GoalY, Terminal and RandomStart are
// used only by GridWorld, and Length only by Chain.
type Config struct {
	Environment EnvName

	Rows, Cols     int
	StartX, StartY int
	GoalX, GoalY   int
	Terminal       [][2]int `json:",omitempty"`
	RandomStart    bool     `json:",omitempty"`

	Length int `json:",omitempty"`
}

// DefaultGridWorld returns the configuration of a 5 x 5 GridWorld
// starting in the bottom left corner, with the goal at (4, 3) behind a
// wall of terminal cells
func DefaultGridWorld() Config {
	return Config{
		Environment: GridWorld,
		Rows:        5,
		Cols:        5,
		StartX:      0,
		StartY:      0,
		GoalX:       4,
		GoalY:       3,
		Terminal:    [][2]int{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {3, 4}, {3, 3}},
	}
}

// DefaultChain returns the configuration of a Chain of length n
func DefaultChain(n int) Config {
	return Config{Environment: Chain, Length: n}
}

// Validate returns an error describing whether or not the configuration
// is valid
func (c Config) Validate() error {
	switch c.Environment {
	case GridWorld:
		_, err := c.CreateGridWorld(0)
		return err

	case Chain:
		_, err := c.CreateChain()
		return err
	}

	return fmt.Errorf("validate: no such environment %q", c.Environment)
}

// CreateGridWorld is a factory for creating the GridWorld described by
// the Config. The seed is used only if RandomStart is set.
func (c Config) CreateGridWorld(seed uint64) (*gridworld.GridWorld, error) {
	if c.Environment != GridWorld {
		return nil, fmt.Errorf("createGridWorld: config describes %v",
			c.Environment)
	}

	terminal := make([]gridworld.Cell, len(c.Terminal))
	for i, cell := range c.Terminal {
		terminal[i] = gridworld.Cell{X: cell[0], Y: cell[1]}
	}
	task := gridworld.NewGoal(gridworld.Cell{X: c.GoalX, Y: c.GoalY}, terminal)

	var s environment.Starter[gridworld.Cell]
	var err error
	if c.RandomStart {
		s, err = gridworld.NewRandomStart(c.Rows, c.Cols, task, seed)
	} else {
		s, err = gridworld.NewSingleStart(c.StartX, c.StartY, c.Rows, c.Cols)
	}
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %v", err)
	}

	g, err := gridworld.New(c.Rows, c.Cols, task, s)
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %v", err)
	}
	return g, nil
}

// CreateChain is a factory for creating the Chain described by the
// Config
func (c Config) CreateChain() (*chain.Chain, error) {
	if c.Environment != Chain {
		return nil, fmt.Errorf("createChain: config describes %v",
			c.Environment)
	}

	ch, err := chain.New(c.Length)
	if err != nil {
		return nil, fmt.Errorf("createChain: %v", err)
	}
	return ch, nil
}
