package kv

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as a JSON file in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store using the given directory.
// The directory is created lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory holding the blob files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the blob for key. Returns false if the file doesn't exist.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s blob: %w", key, err)
	}
	return data, true, nil
}

// Set writes the blob for key atomically via a temp file. Writes are
// skipped when the stored content is already identical.
func (s *FileStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	path := s.path(key)
	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, value) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s blob: %w", key, err)
	}

	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(value)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename %s blob: %w", key, err)
	}

	return nil
}

// Delete removes the blob file for key.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s blob: %w", key, err)
	}
	return nil
}
