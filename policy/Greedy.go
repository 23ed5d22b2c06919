package policy

import (
	"golang.org/x/exp/rand"

	"github.com/Axect/RLAI/mdp"
	"github.com/Axect/RLAI/utils/floatutils"
	"github.com/Axect/RLAI/value"
	"gonum.org/v1/gonum/stat/distuv"
)

// Greedy selects the action whose successor state has the highest
// value. Ties are broken uniformly at random.
type Greedy[S comparable, A any] struct {
	mdp    mdp.MDP[S, A]
	table  value.Table[S]
	source rand.Source
}

// NewGreedy returns a new Greedy policy on m acting with respect to a
// copy of table
func NewGreedy[S comparable, A any](m mdp.MDP[S, A], table value.Table[S],
	seed uint64) *Greedy[S, A] {
	return &Greedy[S, A]{
		mdp:    m,
		table:  table.Clone(),
		source: rand.NewSource(seed),
	}
}

// SelectAction selects a greedy action in state s. If there are no
// legal actions in s, ok is false.
func (p *Greedy[S, A]) SelectAction(s S) (a A, ok bool) {
	actions := p.mdp.ActionsAt(s)
	if len(actions) == 0 {
		return a, false
	}

	_, ties := floatutils.MaxSlice(lookahead(p.mdp, p.table, s, actions))
	if len(ties) == 1 {
		return actions[ties[0]], true
	}

	weights := make([]float64, len(ties))
	for i := range weights {
		weights[i] = 1.0
	}
	dist := distuv.NewCategorical(weights, p.source)
	return actions[ties[int(dist.Rand())]], true
}

// UpdateValueFunction replaces the policy's table with a copy of t
func (p *Greedy[S, A]) UpdateValueFunction(t value.Table[S]) {
	p.table = t.Clone()
}

// ValueFunction returns the policy's table
func (p *Greedy[S, A]) ValueFunction() value.Table[S] {
	return p.table
}

// DisableExploration is a no-op, Greedy never explores
func (p *Greedy[S, A]) DisableExploration() {}
