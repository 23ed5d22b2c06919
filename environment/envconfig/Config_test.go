package envconfig

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/Axect/RLAI/environment/gridworld"
)

func TestDefaultGridWorld(t *testing.T) {
	c := DefaultGridWorld()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	g, err := c.CreateGridWorld(0)
	if err != nil {
		t.Fatal(err)
	}
	if r, cols := g.Dims(); r != 5 || cols != 5 {
		t.Errorf("dims = (%d, %d), want (5, 5)", r, cols)
	}
	if s := g.Start(); s != (gridworld.Cell{X: 0, Y: 0}) {
		t.Errorf("start = %v", s)
	}
	if goal := g.GoalCell(); goal != (gridworld.Cell{X: 4, Y: 3}) {
		t.Errorf("goal = %v", goal)
	}
	if n := len(g.TerminalCells()); n != 6 {
		t.Errorf("want 6 terminal cells, got %d", n)
	}

	if _, err := c.CreateChain(); err == nil {
		t.Error("creating a chain from a gridworld config should fail")
	}
}

func TestRandomStartGridWorld(t *testing.T) {
	c := DefaultGridWorld()
	c.RandomStart = true
	g, err := c.CreateGridWorld(11)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if s := g.Start(); g.Terminal(s) {
			t.Fatalf("started in terminal cell %v", s)
		}
	}
}

func TestChain(t *testing.T) {
	c := DefaultChain(3)
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	ch, err := c.CreateChain()
	if err != nil {
		t.Fatal(err)
	}
	if ch.Len() != 3 {
		t.Errorf("chain length %d", ch.Len())
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{Environment: "Maze"},
		{Environment: Chain},
		func() Config { c := DefaultGridWorld(); c.GoalX = 5; return c }(),
		func() Config { c := DefaultGridWorld(); c.StartY = -1; return c }(),
		func() Config { c := DefaultGridWorld(); c.Rows = 0; return c }(),
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("config %+v should be invalid", c)
		}
	}
}

func TestJSON(t *testing.T) {
	c := DefaultGridWorld()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}

	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("decoded %+v, want %+v", got, c)
	}
}
