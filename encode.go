package ipc

import (
	"encoding/json"
	"fmt"
	"io"
)

// stateFile is the on-disk layout of a GameState.
//
// Pending purchases are stored as a list of entries rather than a JSON
// object so that unit tokens stay values and the file keeps catalog order.
type stateFile struct {
	Balance int            `json:"balance"`
	Pending []pendingEntry `json:"pending"`
}

type pendingEntry struct {
	Unit     Unit `json:"unit"`
	Quantity int  `json:"quantity"`
}

// EncodeGameState writes s as indented JSON. Entries are written in catalog
// order so that the same state always produces the same bytes.
func EncodeGameState(w io.Writer, s *GameState) error {
	f := stateFile{Balance: s.Balance, Pending: []pendingEntry{}}
	for _, p := range s.Purchases() {
		f.Pending = append(f.Pending, pendingEntry{Unit: p.Unit, Quantity: p.Quantity})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("could not encode game state: %w", err)
	}
	return nil
}

// stateFileIn mirrors stateFile with pointers, to tell missing fields from
// zero values.
type stateFileIn struct {
	Balance *int             `json:"balance"`
	Pending *[]pendingEntryIn `json:"pending"`
}

type pendingEntryIn struct {
	Unit     *Unit `json:"unit"`
	Quantity *int  `json:"quantity"`
}

// DecodeGameState reads a GameState written by EncodeGameState. Every field
// is required and nothing may follow the JSON object.
func DecodeGameState(r io.Reader) (*GameState, error) {
	var f stateFileIn
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("could not decode game state: %w", err)
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return nil, fmt.Errorf("could not decode game state: unexpected data after the game state")
	}
	if f.Balance == nil {
		return nil, fmt.Errorf("could not decode game state: missing %q", "balance")
	}
	if f.Pending == nil {
		return nil, fmt.Errorf("could not decode game state: missing %q", "pending")
	}

	s := NewGameState(*f.Balance)
	for i, e := range *f.Pending {
		if e.Unit == nil {
			return nil, fmt.Errorf("could not decode game state: pending entry %d: missing %q", i, "unit")
		}
		if e.Quantity == nil {
			return nil, fmt.Errorf("could not decode game state: pending entry %d: missing %q", i, "quantity")
		}
		if _, exists := s.Pending[*e.Unit]; exists {
			return nil, fmt.Errorf("could not decode game state: duplicate entry for %q", *e.Unit)
		}
		s.Pending[*e.Unit] = *e.Quantity
	}
	return s, nil
}
