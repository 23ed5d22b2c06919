package predictor

import (
	"github.com/Axect/RLAI/stepsize"
	ts "github.com/Axect/RLAI/timestep"
	"github.com/Axect/RLAI/value"
)

// EveryVisitMC implements every-visit Monte Carlo prediction. Each
// occurrence of a state in an episode updates the value of that state
// toward the return observed from that occurrence.
type EveryVisitMC[S comparable] struct {
	table     value.Table[S]
	scheduler stepsize.Scheduler[S]
	gamma     float64

	episode ts.Episode[S]
}

// NewEveryVisitMC returns a new EveryVisitMC predictor with discount
// factor gamma. The predictor takes ownership of both table and
// scheduler.
func NewEveryVisitMC[S comparable](table value.Table[S],
	scheduler stepsize.Scheduler[S], gamma float64) *EveryVisitMC[S] {
	if table == nil {
		table = make(value.Table[S])
	}
	return &EveryVisitMC[S]{
		table:     table,
		scheduler: scheduler,
		gamma:     gamma,
	}
}

// LoadEpisode stores a copy of episode to be consumed by the next call
// to Step. Any episode which has not yet been consumed is discarded.
func (m *EveryVisitMC[S]) LoadEpisode(episode ts.Episode[S]) {
	m.episode = append(ts.Episode[S](nil), episode...)
}

// Returns returns the discounted return from each time index of the
// loaded episode, computed backward as G_t = r_t + γG_{t+1}. If no
// episode is loaded, Returns returns nil.
func (m *EveryVisitMC[S]) Returns() []float64 {
	if len(m.episode) == 0 {
		return nil
	}

	returns := make([]float64, len(m.episode))
	g := 0.0
	for t := len(m.episode) - 1; t >= 0; t-- {
		g = m.episode[t].Reward + m.gamma*g
		returns[t] = g
	}
	return returns
}

// Step updates the value table using the loaded episode and consumes
// it. Visits are processed in order, and the stepsize for the visit at
// index i is queried with time t = i+1.
func (m *EveryVisitMC[S]) Step() error {
	returns := m.Returns()
	if returns == nil {
		return ErrNoEpisode
	}

	for i, visit := range m.episode {
		v := m.table.Value(visit.State)
		alpha := m.scheduler.Stepsize(i+1, visit.State)
		m.table.Set(visit.State, v+alpha*(returns[i]-v))
	}

	m.episode = nil
	return nil
}

// ValueFunction returns the predictor's value table
func (m *EveryVisitMC[S]) ValueFunction() value.Table[S] {
	return m.table
}

// Gamma returns the discount factor
func (m *EveryVisitMC[S]) Gamma() float64 {
	return m.gamma
}
