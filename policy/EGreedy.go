package policy

import (
	"golang.org/x/exp/rand"

	"github.com/Axect/RLAI/mdp"
	"github.com/Axect/RLAI/value"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy. With probability ε, and only
// while exploration is enabled, an action is selected uniformly at
// random. Otherwise the action whose successor has the highest value is
// selected, with ties going to the first such action in ActionsAt order.
type EGreedy[S comparable, A any] struct {
	mdp     mdp.MDP[S, A]
	table   value.Table[S]
	epsilon float64
	explore bool

	source    rand.Source
	bernoulli distuv.Bernoulli
}

// NewEGreedy constructs a new EGreedy policy on m acting with respect to
// a copy of table, where e=epsilon is the probability with which a random
// action is selected
func NewEGreedy[S comparable, A any](m mdp.MDP[S, A], table value.Table[S],
	e float64, seed uint64) *EGreedy[S, A] {
	source := rand.NewSource(seed)

	return &EGreedy[S, A]{
		mdp:       m,
		table:     table.Clone(),
		epsilon:   e,
		explore:   true,
		source:    source,
		bernoulli: distuv.Bernoulli{P: e, Src: source},
	}
}

// SelectAction selects an action from an ε-greedy policy. If there are
// no legal actions in s, ok is false.
func (p *EGreedy[S, A]) SelectAction(s S) (a A, ok bool) {
	// A single Bernoulli draw is made on every call, even when exploration
	// is disabled
	sample := p.bernoulli.Rand() == 1.0

	actions := p.mdp.ActionsAt(s)
	if len(actions) == 0 {
		return a, false
	}

	if sample && p.explore {
		weights := make([]float64, len(actions))
		for i := range weights {
			weights[i] = 1.0
		}
		dist := distuv.NewCategorical(weights, p.source)
		return actions[int(dist.Rand())], true
	}

	return actions[floats.MaxIdx(lookahead(p.mdp, p.table, s, actions))], true
}

// UpdateValueFunction replaces the policy's table with a copy of t
func (p *EGreedy[S, A]) UpdateValueFunction(t value.Table[S]) {
	p.table = t.Clone()
}

// ValueFunction returns the policy's table
func (p *EGreedy[S, A]) ValueFunction() value.Table[S] {
	return p.table
}

// DisableExploration permanently turns off random action selection
func (p *EGreedy[S, A]) DisableExploration() {
	p.explore = false
}

// Exploring returns whether the policy may still select random actions
func (p *EGreedy[S, A]) Exploring() bool {
	return p.explore
}

// Epsilon returns the configured probability of a random action
func (p *EGreedy[S, A]) Epsilon() float64 {
	return p.epsilon
}
