package tracker

import (
	"encoding/json"
	"fmt"
	"os"

	ts "github.com/Axect/RLAI/timestep"
)

// Trajectory tracks the first episode of an experiment, along with an
// evaluation episode set after training, and saves both as JSON:
//
//	{"first": [{"state": ..., "reward": ...}, ...], "evaluation": [...]}
//
// If the task has been set, the goal and terminal states are saved
// alongside the episodes.
type Trajectory[S any] struct {
	first      ts.Episode[S]
	done       bool
	evaluation ts.Episode[S]
	goal       *S
	terminal   []S
	filename   string
}

// TrajectoryData is the content of a file saved by a Trajectory
type TrajectoryData[S any] struct {
	First      ts.Episode[S] `json:"first"`
	Evaluation ts.Episode[S] `json:"evaluation"`
	Goal       *S            `json:"goal,omitempty"`
	Terminal   []S           `json:"terminal,omitempty"`
}

// NewTrajectory returns a new Trajectory Tracker which will save its data
// at the specified location filename
func NewTrajectory[S any](filename string) *Trajectory[S] {
	return &Trajectory[S]{filename: filename}
}

// Track records the timestep if it belongs to the first episode
func (t *Trajectory[S]) Track(step ts.TimeStep[S]) {
	if t.done {
		return
	}
	t.first = append(t.first, ts.Visit[S]{State: step.State,
		Reward: step.Reward})
	t.done = step.Last()
}

// SetEvaluation records the evaluation episode
func (t *Trajectory[S]) SetEvaluation(ep ts.Episode[S]) {
	t.evaluation = append(ts.Episode[S](nil), ep...)
}

// SetTask records the goal and terminal states of the task the episodes
// were generated on
func (t *Trajectory[S]) SetTask(goal S, terminal []S) {
	t.goal = &goal
	t.terminal = append([]S(nil), terminal...)
}

// First returns the first tracked episode
func (t *Trajectory[S]) First() ts.Episode[S] {
	return t.first
}

// Save saves both episodes to disk as JSON
func (t *Trajectory[S]) Save() error {
	data := TrajectoryData[S]{
		First:      t.first,
		Evaluation: t.evaluation,
		Goal:       t.goal,
		Terminal:   t.terminal,
	}

	file, err := os.Create(t.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("save: could not encode trajectories: %v", err)
	}
	return nil
}

// LoadTrajectory loads the episodes saved by a Trajectory Tracker
func LoadTrajectory[S any](filename string) (first, evaluation ts.Episode[S],
	err error) {
	data, err := LoadTrajectoryData[S](filename)
	if err != nil {
		return nil, nil, fmt.Errorf("loadTrajectory: %v", err)
	}
	return data.First, data.Evaluation, nil
}

// LoadTrajectoryData loads everything saved by a Trajectory Tracker,
// including the task if one was set
func LoadTrajectoryData[S any](filename string) (TrajectoryData[S], error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return TrajectoryData[S]{}, fmt.Errorf("loadTrajectoryData: %v", err)
	}

	var data TrajectoryData[S]
	if err := json.Unmarshal(raw, &data); err != nil {
		return TrajectoryData[S]{}, fmt.Errorf("loadTrajectoryData: %v", err)
	}
	return data, nil
}
