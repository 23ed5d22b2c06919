package gridworld

import (
	"fmt"

	"github.com/Axect/RLAI/environment"
)

// NewSingleStart returns a Starter which always starts in cell (x, y) of
// a gridworld with r rows and c columns
func NewSingleStart(x, y, r, c int) (environment.Starter[Cell], error) {
	if x < 0 || x >= c {
		return nil, fmt.Errorf("newSingleStart: x = %d out of cols = %d", x, c)
	} else if y < 0 || y >= r {
		return nil, fmt.Errorf("newSingleStart: y = %d out of rows = %d", y, r)
	}

	return environment.NewSingleStarter(Cell{x, y}), nil
}

// NewRandomStart returns a Starter which starts uniformly at random in
// any cell of a gridworld with r rows and c columns which does not end
// the task t
func NewRandomStart(r, c int, t *Goal,
	seed uint64) (environment.Starter[Cell], error) {
	var cells []Cell
	for x := 0; x < c; x++ {
		for y := 0; y < r; y++ {
			if cell := (Cell{x, y}); !t.Terminal(cell) {
				cells = append(cells, cell)
			}
		}
	}

	s, err := environment.NewCategoricalStarter(cells, seed)
	if err != nil {
		return nil, fmt.Errorf("newRandomStart: %v", err)
	}
	return s, nil
}
