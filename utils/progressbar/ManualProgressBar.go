// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosuri/uilive"

	"github.com/Axect/RLAI/utils/floatutils"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed to the screen.
// Each call to Display() overwrites the previously displayed bar.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	width           float64
	maxProgress     float64
	currentProgress float64
	message         string
	bar             strings.Builder
	startTime       time.Time
	writer          *uilive.Writer
}

// NewManualProgressBar returns a new ManualProgressBar writing to out,
// which is width characters wide and reaches 100% after max calls to
// Increment()
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	writer := uilive.New()
	writer.Out = out

	return &ManualProgressBar{
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		startTime:       time.Now(),
		writer:          writer,
	}
}

// Increment increments the internal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// SetMessage sets a message displayed after the bar
func (p *ManualProgressBar) SetMessage(msg string) {
	p.message = msg
}

// Progress returns the fraction of the bar which is complete
func (p *ManualProgressBar) Progress() float64 {
	if p.maxProgress <= 0 {
		return 1.0
	}
	return floatutils.Clip(p.currentProgress/p.maxProgress, 0, 1)
}

// Display displays the progress bar
func (p *ManualProgressBar) Display() error {
	p.bar.Reset()
	p.bar.WriteString("|")

	currentProg := p.Progress() * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	p.bar.WriteString(fmt.Sprintf("| %d/%d [%.2f%v | elapsed: %v]",
		int(p.currentProgress), int(p.maxProgress), p.Progress()*100, "%",
		time.Since(p.startTime).Truncate(time.Second)))
	if p.message != "" {
		p.bar.WriteString(" " + p.message)
	}

	fmt.Fprintln(p.writer, p.bar.String())
	return p.writer.Flush()
}

// Close displays the final state of the progress bar
func (p *ManualProgressBar) Close() error {
	return p.Display()
}
