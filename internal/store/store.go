// Package store persists the task collection as a flat JSON file.
package store

import "github.com/nibzard/taskdeck/internal/task"

// Store is the repository for the task collection. Every mutation in the
// application is a whole-collection cycle: Load, change in memory, Save.
type Store interface {
	// Load reads the full collection. A missing backing file is treated
	// as first run: the store initializes itself empty and returns an
	// empty list with no error. Malformed content returns an empty list
	// together with a non-fatal error for the caller to report.
	Load() (task.List, error)

	// Save overwrites the full collection. On failure the previous file
	// state is whatever the write left behind; callers must check the
	// error before claiming success.
	Save(task.List) error

	// Path returns a human-readable location of the backing store.
	Path() string
}
