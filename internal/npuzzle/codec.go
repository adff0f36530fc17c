package npuzzle

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Record is the persisted form of a finished solve: enough to replay the
// solution without searching again.
type Record struct {
	Start    Board
	Goal     Board
	Moves    []Move
	Expanded int
}

func DecodeRecord(buf []byte) (*Record, error) {
	var r Record
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r Record) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Steps re-derives every intermediate state of the recorded solution,
// start and goal included.
func (r Record) Steps() ([]State, error) {
	s, err := NewState(r.Start)
	if err != nil {
		return nil, err
	}
	steps := make([]State, 0, len(r.Moves)+1)
	steps = append(steps, s)
	for i, m := range r.Moves {
		next, ok := s.Apply(m)
		if !ok {
			return nil, fmt.Errorf("recorded move %d (%s) leaves the grid", i, m)
		}
		s = next
		steps = append(steps, s)
	}
	return steps, nil
}
