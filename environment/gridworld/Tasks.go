package gridworld

import "sort"

// Goal represents the task of reaching a goal cell in a GridWorld while
// avoiding terminal cells
type Goal struct {
	goal     Cell
	terminal map[Cell]bool

	goalReward     float64
	stepReward     float64
	boundaryReward float64
}

// NewGoal creates and returns a new task of reaching goal. Episodes also
// end in each of the terminal cells. Reaching the goal is rewarded with
// 1, every other move on the board with 0, and every move which has no
// successor with -1.
func NewGoal(goal Cell, terminal []Cell) *Goal {
	t := make(map[Cell]bool, len(terminal))
	for _, cell := range terminal {
		t[cell] = true
	}
	return &Goal{
		goal:           goal,
		terminal:       t,
		goalReward:     1.0,
		stepReward:     0.0,
		boundaryReward: -1.0,
	}
}

// AtGoal returns whether cell is the goal
func (g *Goal) AtGoal(cell Cell) bool {
	return cell == g.goal
}

// Terminal returns whether cell ends an episode, either because it is the
// goal or because it is a terminal cell
func (g *Goal) Terminal(cell Cell) bool {
	return g.AtGoal(cell) || g.terminal[cell]
}

// GoalCell returns the goal
func (g *Goal) GoalCell() Cell {
	return g.goal
}

// TerminalCells returns the terminal cells other than the goal, sorted
// by column and then row
func (g *Goal) TerminalCells() []Cell {
	cells := make([]Cell, 0, len(g.terminal))
	for cell := range g.terminal {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
	return cells
}
