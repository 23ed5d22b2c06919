// Package tracker implements Trackers, which track and save data in an
// experiment
package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/Axect/RLAI/timestep"
)

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished
type Tracker[S any] interface {
	Track(t ts.TimeStep[S])
	Save() error
}

// LoadData loads and returns the data saved by a Return or
// EpisodeLength Tracker
func LoadData(filename string) ([]float64, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %v", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []float64

	// Decode the data
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %v", err)
	}

	return data, nil
}

// saveData gob-encodes data to filename
func saveData(filename string, data []float64) error {
	// Open the file to save to
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	// Encode and save the file
	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		return fmt.Errorf("save: could not encode data: %v", err)
	}
	return nil
}
