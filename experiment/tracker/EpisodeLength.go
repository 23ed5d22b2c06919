package tracker

import (
	ts "github.com/Axect/RLAI/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment, counted in visited states.
// Note that an episode must finish for this Tracker to save its data.
type EpisodeLength[S any] struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength Tracker which will save
// its data at the specified location filename
func NewEpisodeLength[S any](filename string) *EpisodeLength[S] {
	return &EpisodeLength[S]{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode.
func (e *EpisodeLength[S]) Track(t ts.TimeStep[S]) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number+1))
	}
}

// Data returns the lengths of all finished episodes
func (e *EpisodeLength[S]) Data() []float64 {
	return e.episodeLengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength[S]) Save() error {
	return saveData(e.filename, e.episodeLengths)
}
