package store

import "github.com/nibzard/taskdeck/internal/task"

// MemStore is an in-memory Store used by tests and anywhere a backing
// file is not wanted. SaveErr, when set, is returned by Save to exercise
// write-failure paths.
type MemStore struct {
	Tasks   task.List
	SaveErr error
}

// NewMemStore creates an in-memory store seeded with the given tasks.
func NewMemStore(tasks ...task.Task) *MemStore {
	return &MemStore{Tasks: task.List(tasks)}
}

// Load returns a copy of the stored collection.
func (s *MemStore) Load() (task.List, error) {
	out := make(task.List, len(s.Tasks))
	copy(out, s.Tasks)
	return out, nil
}

// Save replaces the stored collection with a copy of tasks.
func (s *MemStore) Save(tasks task.List) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Tasks = make(task.List, len(tasks))
	copy(s.Tasks, tasks)
	return nil
}

// Path identifies the store in messages.
func (s *MemStore) Path() string {
	return "(memory)"
}
