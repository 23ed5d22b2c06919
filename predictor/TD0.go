package predictor

import (
	"github.com/Axect/RLAI/stepsize"
	ts "github.com/Axect/RLAI/timestep"
	"github.com/Axect/RLAI/value"
)

// TD0 implements one-step temporal difference prediction.
//
// TD0 keeps an internal time counter which is used as the time index of
// stepsize queries. The counter starts at 1, is incremented after each
// successful Step, and should be reset at the start of each episode.
type TD0[S comparable] struct {
	table     value.Table[S]
	scheduler stepsize.Scheduler[S]
	gamma     float64
	counter   int

	transition *ts.Transition[S]
}

// NewTD0 returns a new TD0 predictor with discount factor gamma. The
// predictor takes ownership of both table and scheduler.
func NewTD0[S comparable](table value.Table[S],
	scheduler stepsize.Scheduler[S], gamma float64) *TD0[S] {
	if table == nil {
		table = make(value.Table[S])
	}
	return &TD0[S]{
		table:     table,
		scheduler: scheduler,
		gamma:     gamma,
		counter:   1,
	}
}

// LoadTransition stores the transition from s to next with reward r to
// be consumed by the next call to Step. If ok is false, the transition
// is terminal and next is ignored. Any unconsumed transition is
// discarded.
func (td *TD0[S]) LoadTransition(s S, r float64, next S, ok bool) {
	t := ts.NewTransition(s, r, next, ok)
	td.transition = &t
}

// ResetCounter resets the time counter to 1
func (td *TD0[S]) ResetCounter() {
	td.counter = 1
}

// Counter returns the time index that the next Step will use
func (td *TD0[S]) Counter() int {
	return td.counter
}

// TdError returns the TD error of the transition from s to next with
// reward r, without updating the value table. If ok is false, the
// transition is terminal and no bootstrap term is used.
func (td *TD0[S]) TdError(s S, r float64, next S, ok bool) float64 {
	if !ok {
		return r - td.table.Value(s)
	}
	return r + td.gamma*td.table.Value(next) - td.table.Value(s)
}

// Step updates the value of the state of the loaded transition and
// consumes the transition
func (td *TD0[S]) Step() error {
	if td.transition == nil {
		return ErrNoTransition
	}
	t := *td.transition

	delta := td.TdError(t.State, t.Reward, t.Next, !t.Terminal)
	alpha := td.scheduler.Stepsize(td.counter, t.State)
	td.table.Set(t.State, td.table.Value(t.State)+alpha*delta)

	td.counter++
	td.transition = nil
	return nil
}

// ValueFunction returns the predictor's value table
func (td *TD0[S]) ValueFunction() value.Table[S] {
	return td.table
}

// Gamma returns the discount factor
func (td *TD0[S]) Gamma() float64 {
	return td.gamma
}
