package checkpointer

import "fmt"

// nStep implements checkpointing every N episodes
type nStep struct {
	interval int
	object   Serializable // Object to save

	// filename names the next checkpoint, see FilenameEnumerator and
	// FileTimer
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n episodes
func NewNStep(n int, object Serializable,
	filename func() string) (Checkpointer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("newNStep: interval must be positive, got %d",
			n)
	}
	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint checkpoints the Checkpointer's tracked object by calling
// its Save() method if episode is a multiple of the interval
func (n *nStep) Checkpoint(episode int) error {
	if episode%n.interval == 0 {
		return n.object.Save(n.filename())
	}
	return nil
}
