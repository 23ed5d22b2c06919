// Package checkpointer implements checkpointing of learned values
// during an experiment
package checkpointer

// Serializable is an object that can be saved to a file, such as a
// value.Table
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects at the end of
// episodes, where episodes are counted from 1
type Checkpointer interface {
	Checkpoint(episode int) error
}
