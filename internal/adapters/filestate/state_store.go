package filestate

// Package filestate provides a file-backed durable slot store, the
// local-storage analog for single-host use. Slots are held in one JSON
// document rewritten atomically on every mutation.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

// StateStore is a file-backed ports.StateStore. Values are stored
// verbatim as strings, matching local-storage semantics.
type StateStore struct {
	path string

	mu    sync.Mutex
	slots map[string]string
}

// NewStateStore opens (or creates) the state file at path.
func NewStateStore(path string) (*StateStore, error) {
	if path == "" {
		return nil, errors.New("state file path is required")
	}

	s := &StateStore{path: path, slots: map[string]string{}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *StateStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // First run, start empty.
		}
		return fmt.Errorf("read state file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.slots); err != nil {
		return fmt.Errorf("parse state file: %w", err)
	}
	return nil
}

// flush rewrites the whole document via a temp file and rename so a
// crash mid-write cannot truncate existing state.
func (s *StateStore) flush() error {
	data, err := json.MarshalIndent(s.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (s *StateStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return []byte(value), nil
}

func (s *StateStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("state key cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = string(value)
	return s.flush()
}

func (s *StateStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[key]; !ok {
		return nil
	}
	delete(s.slots, key)
	return s.flush()
}
