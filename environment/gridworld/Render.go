package gridworld

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/Axect/RLAI/value"
)

// Render writes the values of every cell to w as a grid, with the top
// row first. The goal is printed in green and terminal cells in red. If
// colors is false, no escape sequences are written.
func (g *GridWorld) Render(w io.Writer, table value.Table[Cell],
	colors bool) error {
	au := aurora.NewAurora(colors)

	for y := g.r - 1; y >= 0; y-- {
		for x := 0; x < g.c; x++ {
			cell := Cell{x, y}
			v := format(table.Value(cell))

			var out aurora.Value
			switch {
			case g.AtGoal(cell):
				out = au.Green(v)
			case g.Terminal(cell):
				out = au.Red(v)
			default:
				out = au.Blue(v)
			}

			if _, err := fmt.Fprintf(w, "%v%v", out, au.White("|")); err != nil {
				return fmt.Errorf("render: %v", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("render: %v", err)
		}
	}
	return nil
}

func format(x float64) string {
	if x < 0 {
		return " -" + fmt.Sprintf("%05.2f", -x)
	}
	return "  " + fmt.Sprintf("%05.2f", x)
}
