// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists whole JSON documents on disk, one file per collection.
// Writes replace the entire document via a temp file and rename, so readers
// never observe a half-written file. Serialization of concurrent
// read-modify-write cycles is the responsibility of the per-collection
// repositories layered on top.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the root directory of the store
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read loads the collection document into out. If the document file does not
// exist yet it is created from the current (default) value of out.
func (s *FileStore) Read(collection string, out interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return s.Write(collection, out)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %v", collection, err)
	}
	return nil
}

// Write replaces the collection document atomically
func (s *FileStore) Write(collection string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %v", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %v", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %v", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %v", collection, err)
	}

	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %v", collection, err)
	}
	return nil
}
