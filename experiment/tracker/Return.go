package tracker

import (
	"fmt"

	ts "github.com/Axect/RLAI/timestep"
)

// Return tracks and saves the episodic return in an experiment. When
// an experiment produces a TimeStep, this Tracker will extract the
// reward and accumulate the undiscounted return for each episode in the
// experiment.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// return will not be saved.
type Return[S any] struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn[S any](filename string) *Return[S] {
	return &Return[S]{lastTimeStep: -1, filename: filename}
}

// Track tracks the rewards seen on a timestep. By calling this method
// on every timestep, the Tracker will store all rewards seen in the
// episode, and save the cumulative reward for that episode as the
// episodic return.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return[S]) Track(step ts.TimeStep[S]) {
	// Ensure that Track is called on sequential timesteps
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	// Episode has ended, save the return and begin tracking the
	// return for a new episode
	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Data returns the returns of all finished episodes
func (r *Return[S]) Data() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return[S]) Save() error {
	return saveData(r.filename, r.episodeReturns)
}
