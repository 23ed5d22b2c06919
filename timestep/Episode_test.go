package timestep

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestReturn(t *testing.T) {
	ep := Episode[string]{{"A", 1}, {"B", 2}, {"C", 4}}

	tests := []struct {
		discount float64
		want     float64
	}{
		{1, 7},
		{0.5, 1 + 0.5*2 + 0.25*4},
		{0, 1},
	}

	for _, test := range tests {
		if got := ep.Return(test.discount); !scalar.EqualWithinAbs(got,
			test.want, 1e-12) {
			t.Errorf("Return(%v) = %v, want %v", test.discount, got, test.want)
		}
	}

	if got := (Episode[string]{}).Return(0.9); got != 0 {
		t.Errorf("empty episode return = %v", got)
	}
}

func TestStatesAndRewards(t *testing.T) {
	ep := Episode[int]{{0, 0}, {1, 1}}
	if got := ep.States(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("states = %v", got)
	}
	if got := ep.Rewards(); !reflect.DeepEqual(got, []float64{0, 1}) {
		t.Errorf("rewards = %v", got)
	}
	if ep.Len() != 2 {
		t.Errorf("len = %d", ep.Len())
	}
}

func TestTimeSteps(t *testing.T) {
	ep := Episode[int]{{0, 0}, {1, 0}, {2, 1}}
	steps := ep.TimeSteps(0.9)

	want := []StepType{First, Mid, Last}
	for i, step := range steps {
		if step.StepType != want[i] {
			t.Errorf("step %d: type %v, want %v", i, step.StepType, want[i])
		}
		if step.Number != i || step.State != i || step.Discount != 0.9 {
			t.Errorf("step %d: %v", i, step)
		}
	}
	if !steps[0].First() || !steps[1].Mid() || !steps[2].Last() {
		t.Error("step predicates disagree with step types")
	}

	// A single visit is both the first and the last, and is reported last
	single := Episode[int]{{0, 1}}.TimeSteps(1)
	if !single[0].Last() {
		t.Errorf("single step type %v, want Last", single[0].StepType)
	}
}

func TestNewTransition(t *testing.T) {
	tr := NewTransition("A", 1, "B", true)
	if tr.Terminal || tr.Next != "B" || tr.Reward != 1 {
		t.Errorf("transition %+v", tr)
	}
	if !NewTransition("A", 0, "", false).Terminal {
		t.Error("transition without successor should be terminal")
	}
}
