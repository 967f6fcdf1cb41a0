// Package storage provides the key-value blob store behind save/load.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no blob exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence collaborator for the game state. Values are
// opaque serialized blobs.
type Store interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

// FileStore persists each key as a file under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the blob for a key.
func (s *FileStore) Get(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read save %s: %w", key, err)
	}
	return string(data), nil
}

// Put writes the blob for a key.
func (s *FileStore) Put(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write save %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	blobs map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]string)}
}

// Get reads the blob for a key.
func (s *MemoryStore) Get(key string) (string, error) {
	v, ok := s.blobs[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Put writes the blob for a key.
func (s *MemoryStore) Put(key, value string) error {
	s.blobs[key] = value
	return nil
}
