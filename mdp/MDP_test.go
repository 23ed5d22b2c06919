package mdp

import (
	"errors"
	"reflect"
	"testing"

	ts "github.com/Axect/RLAI/timestep"
)

// line is a deterministic walk from 0 to n-1. Moving from n-1 has no
// successor.
type line struct{ n int }

func (l line) States() []int {
	s := make([]int, l.n)
	for i := range s {
		s[i] = i
	}
	return s
}

func (l line) Actions() []bool { return []bool{true} }

func (l line) ActionsAt(s int) []bool {
	if s == l.n-1 {
		return nil
	}
	return []bool{true}
}

func (l line) Reward(s int, a bool) float64 {
	if s+1 == l.n-1 {
		return 1
	}
	return 0
}

func (l line) Transition(s int, a bool) (int, bool) {
	if s >= l.n-1 {
		return 0, false
	}
	return s + 1, true
}

// forward moves forward while the line has an action
type forward struct{ m line }

func (f forward) SelectAction(s int) (bool, bool) {
	actions := f.m.ActionsAt(s)
	if len(actions) == 0 {
		return false, false
	}
	return actions[0], true
}

// always moves forward, even where there is no action
type always struct{}

func (always) SelectAction(int) (bool, bool) { return true, true }

func TestStep(t *testing.T) {
	m := line{3}
	next, ok, r := Step[int, bool](m, 1, true)
	if next != 2 || !ok || r != 1 {
		t.Errorf("Step(1) = (%v, %v, %v)", next, ok, r)
	}

	_, ok, r = Step[int, bool](m, 2, true)
	if ok || r != 0 {
		t.Errorf("Step(2) = (_, %v, %v), want no successor", ok, r)
	}
}

func TestRollout(t *testing.T) {
	m := line{3}
	ep, err := Rollout[int, bool](m, always{}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := ts.Episode[int]{{State: 0, Reward: 0}, {State: 1, Reward: 1},
		{State: 2, Reward: 0}}
	if !reflect.DeepEqual(ep, want) {
		t.Errorf("episode = %v, want %v", ep, want)
	}
}

func TestRolloutMaxSteps(t *testing.T) {
	ep, err := Rollout[int, bool](line{10}, always{}, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if ep.Len() != 4 {
		t.Errorf("episode length %d, want 4", ep.Len())
	}
}

func TestRolloutNoAction(t *testing.T) {
	m := line{3}
	ep, err := Rollout[int, bool](m, forward{m}, 0, 0)
	if !errors.Is(err, ErrNoAction) {
		t.Fatalf("err = %v, want ErrNoAction", err)
	}
	if ep.Len() != 2 {
		t.Errorf("partial episode length %d, want 2", ep.Len())
	}
}

func TestSimulate(t *testing.T) {
	m := line{4}
	r := Bind[int, bool](m, always{})
	if _, ok := r.Policy().(always); !ok {
		t.Errorf("bound policy %T", r.Policy())
	}

	ep, err := Simulate[int, bool](r, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := ep.States(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("states = %v", got)
	}
	if ep.Return(1) != 1 {
		t.Errorf("return = %v, want 1", ep.Return(1))
	}
}
