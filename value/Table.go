// Package value implements tabular state-value functions
package value

import (
	"encoding/gob"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats/scalar"
)

// ValueFunction maps states to their estimated expected discounted
// return
type ValueFunction[S any] interface {
	Value(s S) float64
}

// Table is a tabular ValueFunction. States which are not in the table
// have value 0.0. Reading a state never inserts it.
type Table[S comparable] map[S]float64

// New returns a Table holding init for each state in states
func New[S comparable](states []S, init float64) Table[S] {
	t := make(Table[S], len(states))
	for _, s := range states {
		t[s] = init
	}
	return t
}

// Value returns the value of state s, or 0.0 if s is not in the table
func (t Table[S]) Value(s S) float64 {
	return t[s]
}

// Set sets the value of state s
func (t Table[S]) Set(s S, v float64) {
	t[s] = v
}

// Len returns the number of states stored in the table
func (t Table[S]) Len() int {
	return len(t)
}

// Clone returns a deep copy of the table
func (t Table[S]) Clone() Table[S] {
	c := make(Table[S], len(t))
	for s, v := range t {
		c[s] = v
	}
	return c
}

// Equal returns whether t and other hold the same states with values
// within tol of each other
func (t Table[S]) Equal(other Table[S], tol float64) bool {
	if len(t) != len(other) {
		return false
	}
	for s, v := range t {
		w, ok := other[s]
		if !ok || !scalar.EqualWithinAbs(v, w, tol) {
			return false
		}
	}
	return true
}

// Save gob-encodes the table to filename
func (t Table[S]) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create file: %v", err)
	}
	defer file.Close()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(map[S]float64(t)); err != nil {
		return fmt.Errorf("save: could not encode table: %v", err)
	}
	return nil
}

// Load decodes a table previously written by Save
func Load[S comparable](filename string) (Table[S], error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load: could not open file: %v", err)
	}
	defer file.Close()

	var data map[S]float64
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("load: could not decode table: %v", err)
	}
	return Table[S](data), nil
}
