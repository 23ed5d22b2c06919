package stepsize

import (
	"encoding/json"
	"math"
	"testing"
)

func TestConstant(t *testing.T) {
	c := NewConstant[string](0.5)
	for step := 1; step < 10; step++ {
		if got := c.Stepsize(step, "s"); got != 0.5 {
			t.Errorf("stepsize at t=%d: want 0.5, got %v", step, got)
		}
	}
}

func TestInverseTime(t *testing.T) {
	s := NewInverseTime[int](10)

	tests := []struct {
		t    int
		want float64
	}{
		{1, 10},
		{2, 5},
		{4, 2.5},
		{10, 1},
	}

	for _, test := range tests {
		if got := s.Stepsize(test.t, 0); got != test.want {
			t.Errorf("stepsize at t=%d: want %v, got %v", test.t, test.want,
				got)
		}
	}
}

func TestPower(t *testing.T) {
	p := NewPower[int](1, 0.5)

	if got := p.Stepsize(1, 0); got != 1 {
		t.Errorf("stepsize at t=1: want 1, got %v", got)
	}
	if got := p.Stepsize(4, 0); got != 0.5 {
		t.Errorf("stepsize at t=4: want 0.5, got %v", got)
	}

	p = NewPower[int](2, 1.5)
	want := 2 / math.Pow(3, 1.5)
	if got := p.Stepsize(3, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("stepsize at t=3: want %v, got %v", want, got)
	}
}

func TestPowerWithUnitEtaMatchesInverseTime(t *testing.T) {
	p := NewPower[int](3, 1)
	i := NewInverseTime[int](3)
	for step := 1; step <= 20; step++ {
		if a, b := p.Stepsize(step, 0), i.Stepsize(step, 0); math.Abs(a-b) > 1e-12 {
			t.Errorf("t=%d: power %v != inverse time %v", step, a, b)
		}
	}
}

func TestCount(t *testing.T) {
	c := NewCount[string](1)

	// Counts are per state and ignore the time index
	want := []struct {
		s    string
		want float64
	}{
		{"a", 1},
		{"a", 0.5},
		{"b", 1},
		{"a", 1.0 / 3},
		{"b", 0.5},
	}
	for i, w := range want {
		if got := c.Stepsize(100, w.s); math.Abs(got-w.want) > 1e-12 {
			t.Errorf("query %d (%v): want %v, got %v", i, w.s, w.want, got)
		}
	}

	if n := c.Visits("a"); n != 3 {
		t.Errorf("visits of a: want 3, got %d", n)
	}
	if n := c.Visits("c"); n != 0 {
		t.Errorf("visits of unseen state: want 0, got %d", n)
	}
}

func TestStepsizesArePositive(t *testing.T) {
	schedulers := map[string]Scheduler[int]{
		"constant": NewConstant[int](0.1),
		"inverse":  NewInverseTime[int](0.1),
		"power":    NewPower[int](0.1, 0.7),
		"count":    NewCount[int](0.1),
	}

	for name, s := range schedulers {
		for step := 1; step <= 1000; step++ {
			if a := s.Stepsize(step, step%7); a <= 0 {
				t.Errorf("%v: non-positive stepsize %v at t=%d", name, a, step)
			}
		}
	}
}

func TestCreate(t *testing.T) {
	configs := []Config{
		{Type: ConstantType, C: 0.5},
		{Type: InverseTimeType, C: 1},
		{Type: PowerType, C: 1, Eta: 0.6},
		{Type: CountType, C: 1},
	}

	for _, config := range configs {
		if err := config.Validate(); err != nil {
			t.Errorf("%v: validate: %v", config.Type, err)
		}
		s, err := Create[int](config)
		if err != nil {
			t.Errorf("%v: create: %v", config.Type, err)
			continue
		}
		if got := s.Stepsize(1, 0); got != config.C {
			t.Errorf("%v: first stepsize should be C=%v, got %v", config.Type,
				config.C, got)
		}
	}

	bad := Config{Type: "Linear", C: 1}
	if err := bad.Validate(); err == nil {
		t.Error("validate: expected error for unknown scheduler type")
	}
	if _, err := Create[int](bad); err == nil {
		t.Error("create: expected error for unknown scheduler type")
	}
}

func TestConfigJSON(t *testing.T) {
	data := []byte(`{"Type": "Power", "C": 2, "Eta": 0.75}`)

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("could not unmarshal config: %v", err)
	}
	if c.Type != PowerType || c.C != 2 || c.Eta != 0.75 {
		t.Errorf("unexpected config %+v", c)
	}
}
