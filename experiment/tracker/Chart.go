package tracker

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	ts "github.com/Axect/RLAI/timestep"
)

// Chart tracks the length and return of each episode and saves them as
// an HTML page of line charts
type Chart[S any] struct {
	title    string
	lengths  *EpisodeLength[S]
	returns  *Return[S]
	filename string
}

// NewChart returns a new Chart Tracker which will render its data to
// the HTML file filename
func NewChart[S any](title, filename string) *Chart[S] {
	return &Chart[S]{
		title:    title,
		lengths:  NewEpisodeLength[S](""),
		returns:  NewReturn[S](""),
		filename: filename,
	}
}

// Track tracks the timestep
func (c *Chart[S]) Track(t ts.TimeStep[S]) {
	c.lengths.Track(t)
	c.returns.Track(t)
}

// Save renders the charts to disk
func (c *Chart[S]) Save() error {
	page := components.NewPage()
	page.AddCharts(
		line(c.title, "Episode length", c.lengths.Data()),
		line(c.title, "Return", c.returns.Data()),
	)

	f, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("save: could not render chart: %v", err)
	}
	return nil
}

func line(title, name string, data []float64) *charts.Line {
	l := charts.NewLine()
	l.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: name,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: name}),
	)

	episodes := make([]string, len(data))
	items := make([]opts.LineData, len(data))
	for i, v := range data {
		episodes[i] = strconv.Itoa(i + 1)
		items[i] = opts.LineData{Value: v}
	}

	l.SetXAxis(episodes).AddSeries(name, items)
	return l
}
