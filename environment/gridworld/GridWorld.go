// Package gridworld implements 2D gridworld environments
package gridworld

import (
	"fmt"

	"github.com/Axect/RLAI/environment"
)

// Cell is a position in a GridWorld. X indexes columns from the left and
// Y indexes rows from the bottom.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Action is a move in a GridWorld
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// GridWorld represents a gridworld environment with c columns and r
// rows. Moving off the board or moving out of a terminal cell yields no
// successor.
type GridWorld struct {
	*Goal
	environment.Starter[Cell]
	r, c int
}

// New creates a new gridworld with r rows, c columns, task t, and
// starting state distribution s
func New(r, c int, t *Goal, s environment.Starter[Cell]) (*GridWorld, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("new: gridworld must have positive dimensions, "+
			"got (%d, %d)", r, c)
	}

	g := &GridWorld{t, s, r, c}
	if !g.Contains(t.goal) {
		return nil, fmt.Errorf("new: goal %v out of bounds", t.goal)
	}
	for cell := range t.terminal {
		if !g.Contains(cell) {
			return nil, fmt.Errorf("new: terminal cell %v out of bounds", cell)
		}
	}
	return g, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Contains returns whether cell lies on the board
func (g *GridWorld) Contains(cell Cell) bool {
	return cell.X >= 0 && cell.X < g.c && cell.Y >= 0 && cell.Y < g.r
}

// States returns every cell of the GridWorld, column by column
func (g *GridWorld) States() []Cell {
	states := make([]Cell, 0, g.r*g.c)
	for x := 0; x < g.c; x++ {
		for y := 0; y < g.r; y++ {
			states = append(states, Cell{x, y})
		}
	}
	return states
}

// Actions returns every action of the GridWorld
func (g *GridWorld) Actions() []Action {
	return []Action{Up, Down, Left, Right}
}

// ActionsAt returns the actions which stay on the board from s, in the
// order Left, Right, Up, Down. Terminal cells still have actions, but
// none of them has a successor.
func (g *GridWorld) ActionsAt(s Cell) []Action {
	actions := make([]Action, 0, 4)
	for _, a := range []Action{Left, Right, Up, Down} {
		if g.Contains(move(s, a)) {
			actions = append(actions, a)
		}
	}
	return actions
}

// Reward returns the reward for taking action a in s: the goal reward
// when landing on the goal, the step reward when landing elsewhere, and
// the boundary reward when a has no successor
func (g *GridWorld) Reward(s Cell, a Action) float64 {
	next, ok := g.Transition(s, a)
	if !ok {
		return g.boundaryReward
	}
	if g.AtGoal(next) {
		return g.goalReward
	}
	return g.stepReward
}

// Transition returns the cell reached by taking action a in s. If s is
// terminal or a leaves the board, ok is false.
func (g *GridWorld) Transition(s Cell, a Action) (next Cell, ok bool) {
	if g.Terminal(s) {
		return next, false
	}

	next = move(s, a)
	if !g.Contains(next) {
		return Cell{}, false
	}
	return next, true
}

func (g *GridWorld) String() string {
	str := "GridWorld | Goal: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, g.goal, g.r, g.c)
}

// move returns the cell adjacent to s in the direction of a, without
// checking bounds
func move(s Cell, a Action) Cell {
	switch a {
	case Up:
		s.Y++
	case Down:
		s.Y--
	case Left:
		s.X--
	case Right:
		s.X++
	}
	return s
}
