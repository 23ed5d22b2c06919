package tracker

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary summarizes data tracked over the episodes of an experiment
type Summary struct {
	Episodes  int
	Mean, Std float64
	Min, Max  float64
}

// Summarize returns the Summary of data. The zero Summary is returned
// for empty data.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}
	return Summary{
		Episodes: len(data),
		Mean:     mean,
		Std:      std,
		Min:      floats.Min(data),
		Max:      floats.Max(data),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("episodes: %d | mean: %.3f | std: %.3f | min: %.3f | "+
		"max: %.3f", s.Episodes, s.Mean, s.Std, s.Min, s.Max)
}
