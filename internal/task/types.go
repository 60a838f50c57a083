package task

import (
	"errors"
	"strings"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the known priority values from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// NormalizePriority maps arbitrary input to a known priority value.
// Matching is case-insensitive; empty or unrecognized input maps to Low.
func NormalizePriority(input string) Priority {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// IsValidPriority reports whether input names a known priority value.
func IsValidPriority(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "low", "medium", "high":
		return true
	}
	return false
}

// Task represents a single to-do record.
type Task struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Priority  Priority `json:"priority"`
	Category  string   `json:"category"`
	Completed bool     `json:"completed"`
}

// ErrEmptyTitle is returned when an add or edit would leave a task without
// a title.
var ErrEmptyTitle = errors.New("title must not be empty")

// List is the ordered collection of tasks, the unit of persistence.
type List []Task

// NextID returns the next unique id: one greater than the maximum id
// present, or 1 for an empty list. Ids strictly increase even after
// deletions.
func (l List) NextID() int {
	max := 0
	for i := range l {
		if l[i].ID > max {
			max = l[i].ID
		}
	}
	return max + 1
}

// Find returns the task with the given id, or nil if not found.
func (l List) Find(id int) *Task {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// Add appends a new incomplete task with a freshly assigned id. The title
// and category are trimmed; a blank title is rejected with ErrEmptyTitle
// and the list is left unchanged.
func (l *List) Add(title, category string, priority Priority) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	t := Task{
		ID:        l.NextID(),
		Title:     title,
		Priority:  NormalizePriority(string(priority)),
		Category:  strings.TrimSpace(category),
		Completed: false,
	}
	*l = append(*l, t)
	return t, nil
}

// Complete marks the task with the given id as completed. A missing id is
// a silent no-op; the return value reports whether a task was found.
func (l List) Complete(id int) bool {
	return l.setCompleted(id, true)
}

// Uncomplete marks the task with the given id as not completed. A missing
// id is a silent no-op; the return value reports whether a task was found.
func (l List) Uncomplete(id int) bool {
	return l.setCompleted(id, false)
}

func (l List) setCompleted(id int, completed bool) bool {
	for i := range l {
		if l[i].ID == id {
			l[i].Completed = completed
			return true
		}
	}
	return false
}

// Edit replaces the title, category, and priority of the task with the
// given id. Title and category are trimmed; there is no validation beyond
// trimming. A missing id is a silent no-op.
func (l List) Edit(id int, title, category string, priority Priority) bool {
	for i := range l {
		if l[i].ID == id {
			l[i].Title = strings.TrimSpace(title)
			l[i].Category = strings.TrimSpace(category)
			l[i].Priority = NormalizePriority(string(priority))
			return true
		}
	}
	return false
}

// Delete removes the task with the given id, preserving the order of the
// remaining tasks. A missing id is a silent no-op.
func (l *List) Delete(id int) bool {
	for i := range *l {
		if (*l)[i].ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// ClearCompleted removes every completed task in one pass and returns the
// number of tasks removed.
func (l *List) ClearCompleted() int {
	kept := (*l)[:0]
	removed := 0
	for _, t := range *l {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	*l = kept
	return removed
}

// Normalize fills in defaults for records read from disk: absent or
// unknown priorities become Low.
func (l List) Normalize() {
	for i := range l {
		l[i].Priority = NormalizePriority(string(l[i].Priority))
	}
}
