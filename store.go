package ipc

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNoGame is returned when there is no readable game state to work on.
var ErrNoGame = errors.New("no game in progress")

// DefaultStateFile is the state file used when none is configured.
const DefaultStateFile = "state.json"

// Store loads and saves the single game state.
type Store interface {
	// Load returns the persisted game state. Any failure to read or decode it
	// is reported as an error wrapping ErrNoGame.
	Load() (*GameState, error)
	// Save replaces the persisted game state.
	Save(*GameState) error
}

// FileStore persists the game state as a JSON file at Path.
//
// There is no locking: concurrent processes sharing a file race and the last
// one to save wins.
type FileStore struct {
	Path string
}

// Load implements Store.
func (f FileStore) Load() (*GameState, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGame, err)
	}
	defer file.Close()

	s, err := DecodeGameState(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNoGame, f.Path, err)
	}
	return s, nil
}

// Save implements Store.
func (f FileStore) Save(s *GameState) error {
	file, err := os.OpenFile(f.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("could not save game state: %w", err)
	}
	if err := EncodeGameState(file, s); err != nil {
		file.Close()
		return fmt.Errorf("could not save game state to %q: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not save game state to %q: %w", f.Path, err)
	}
	return nil
}

// MemoryStore keeps the encoded game state in memory. Its zero value holds no
// game.
type MemoryStore struct {
	data    []byte
	saved   bool
	SaveErr error // if set, Save fails with it
}

// Load implements Store.
func (m *MemoryStore) Load() (*GameState, error) {
	if !m.saved {
		return nil, fmt.Errorf("%w: %w", ErrNoGame, fs.ErrNotExist)
	}
	s, err := DecodeGameState(bytes.NewReader(m.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGame, err)
	}
	return s, nil
}

// Save implements Store.
func (m *MemoryStore) Save(s *GameState) error {
	if m.SaveErr != nil {
		return fmt.Errorf("could not save game state: %w", m.SaveErr)
	}
	var b bytes.Buffer
	if err := EncodeGameState(&b, s); err != nil {
		return err
	}
	m.data, m.saved = b.Bytes(), true
	return nil
}

// Exists reports whether a game state has been saved.
func (m *MemoryStore) Exists() bool { return m.saved }

// Bytes returns the encoded game state.
func (m *MemoryStore) Bytes() []byte { return m.data }
