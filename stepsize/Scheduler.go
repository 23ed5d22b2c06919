// Package stepsize implements stepsize (learning rate) schedulers for
// tabular value prediction algorithms.
//
// A Scheduler maps a 1-based time index and the state being updated to a
// learning rate. Schedulers may be stateful, in which case every call to
// Stepsize mutates the scheduler. Scheduler parameters are not validated:
// a non-positive constant produces non-positive stepsizes.
package stepsize

import "math"

// Scheduler produces the stepsize used to update the value of state s at
// time t, where t starts at 1.
type Scheduler[S comparable] interface {
	Stepsize(t int, s S) float64
}

// Constant is a Scheduler which always returns the stepsize C
type Constant[S comparable] struct {
	C float64
}

// NewConstant returns a new Constant scheduler
func NewConstant[S comparable](c float64) *Constant[S] {
	return &Constant[S]{C: c}
}

// Stepsize returns C
func (c *Constant[S]) Stepsize(_ int, _ S) float64 {
	return c.C
}

// InverseTime is a Scheduler which decays the stepsize as C / t
type InverseTime[S comparable] struct {
	C float64
}

// NewInverseTime returns a new InverseTime scheduler
func NewInverseTime[S comparable](c float64) *InverseTime[S] {
	return &InverseTime[S]{C: c}
}

// Stepsize returns C / t
func (i *InverseTime[S]) Stepsize(t int, _ S) float64 {
	return i.C / float64(t)
}

// Power is a Scheduler which decays the stepsize as C / t^η
type Power[S comparable] struct {
	C   float64
	Eta float64
}

// NewPower returns a new Power scheduler
func NewPower[S comparable](c, eta float64) *Power[S] {
	return &Power[S]{C: c, Eta: eta}
}

// Stepsize returns C / t^η
func (p *Power[S]) Stepsize(t int, _ S) float64 {
	return p.C / math.Pow(float64(t), p.Eta)
}

// Count is a Scheduler which decays the stepsize as C / N(s), where N(s)
// is the number of times the stepsize for state s has been queried,
// including the current query. The counts persist for the lifetime of
// the scheduler and are shared by every predictor using it.
type Count[S comparable] struct {
	C      float64
	counts map[S]int
}

// NewCount returns a new Count scheduler with all counts at zero
func NewCount[S comparable](c float64) *Count[S] {
	return &Count[S]{C: c, counts: make(map[S]int)}
}

// Stepsize increments N(s) and returns C / N(s)
func (c *Count[S]) Stepsize(_ int, s S) float64 {
	c.counts[s]++
	return c.C / float64(c.counts[s])
}

// Visits returns N(s)
func (c *Count[S]) Visits(s S) int {
	return c.counts[s]
}
