package timestep

// Visit is a single (state, reward) pair of an episode: the agent was in
// State and received Reward for the action it took there.
type Visit[S any] struct {
	State  S       `json:"state"`
	Reward float64 `json:"reward"`
}

// Episode is an ordered sequence of visits from an initial state until
// the environment reports no successor state.
type Episode[S any] []Visit[S]

// Len returns the number of visits in the episode
func (e Episode[S]) Len() int {
	return len(e)
}

// States returns the visited states in order
func (e Episode[S]) States() []S {
	states := make([]S, len(e))
	for i := range e {
		states[i] = e[i].State
	}
	return states
}

// Rewards returns the rewards received in order
func (e Episode[S]) Rewards() []float64 {
	rewards := make([]float64, len(e))
	for i := range e {
		rewards[i] = e[i].Reward
	}
	return rewards
}

// Return returns the discounted return of the whole episode from its
// first visit.
func (e Episode[S]) Return(discount float64) float64 {
	g := 0.0
	for i := len(e) - 1; i >= 0; i-- {
		g = e[i].Reward + discount*g
	}
	return g
}

// TimeSteps converts the episode into a sequence of TimeSteps, the last
// of which has type Last.
func (e Episode[S]) TimeSteps(discount float64) []TimeStep[S] {
	steps := make([]TimeStep[S], len(e))
	for i, v := range e {
		stepType := Mid
		switch {
		case i == len(e)-1:
			stepType = Last
		case i == 0:
			stepType = First
		}
		steps[i] = New(stepType, v.Reward, discount, v.State, i)
	}
	return steps
}

// Transition is a single (state, reward, next state) triple. If Terminal
// is true, the environment reported no successor and Next should be
// ignored.
type Transition[S any] struct {
	State    S
	Reward   float64
	Next     S
	Terminal bool
}

// NewTransition returns a transition to next. If ok is false the
// transition is terminal.
func NewTransition[S any](s S, r float64, next S, ok bool) Transition[S] {
	return Transition[S]{State: s, Reward: r, Next: next, Terminal: !ok}
}
