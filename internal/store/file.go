package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/taskdeck/internal/task"
)

// FileStore stores the collection in a single JSON file containing a
// top-level array of task objects.
type FileStore struct {
	path string
}

// NewFileStore creates a file store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the backing file. If the file does not exist it
// is initialized to an empty array and an empty list is returned. If the
// content is not valid JSON, or is valid JSON but not an array, Load
// returns an empty list together with the error so the caller can report
// it and keep running.
func (s *FileStore) Load() (task.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if saveErr := s.Save(task.List{}); saveErr != nil {
				return task.List{}, fmt.Errorf("initialize task file: %w", saveErr)
			}
			return task.List{}, nil
		}
		return task.List{}, fmt.Errorf("read task file: %w", err)
	}

	var tasks task.List
	if err := json.Unmarshal(data, &tasks); err != nil {
		if json.Valid(data) {
			return task.List{}, fmt.Errorf("task file %s is not a JSON array", s.path)
		}
		return task.List{}, fmt.Errorf("parse task file: %w", err)
	}

	tasks.Normalize()
	return tasks, nil
}

// Save serializes the full collection with 2-space indentation and a
// trailing newline, non-ASCII characters preserved, and replaces the
// backing file with a write-to-temp-then-rename so readers never observe
// a partial write.
func (s *FileStore) Save(tasks task.List) error {
	data, err := Marshal(tasks)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create task file directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".todos-*.json")
	if err != nil {
		return fmt.Errorf("create temp task file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace task file: %w", err)
	}

	return nil
}

// Marshal encodes the collection in the persisted file format: a JSON
// array with 2-space indentation, HTML escaping disabled so non-ASCII and
// punctuation survive verbatim, and a trailing newline. A nil list encodes
// as an empty array. Export uses the same encoding as the backing file.
func Marshal(tasks task.List) ([]byte, error) {
	if tasks == nil {
		tasks = task.List{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("marshal task file: %w", err)
	}
	return buf.Bytes(), nil
}
