package domain

import (
	"strings"
	"time"
)

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewTask creates a new Task with the given title, stamping the creation time.
func NewTask(title, description string, priority Priority, createdAt time.Time) Task {
	return Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   createdAt,
	}
}

// Complete marks the task completed at the given time.
func (t Task) Complete(at time.Time) Task {
	t.Completed = true
	t.CompletedAt = &at
	return t
}

// Reopen clears the completion state regardless of the prior state.
func (t Task) Reopen() Task {
	t.Completed = false
	t.CompletedAt = nil
	return t
}

// IsValid checks if the task has valid data.
// A completed task must carry a completion time, and vice versa.
func (t Task) IsValid() bool {
	if strings.TrimSpace(t.Title) == "" {
		return false
	}
	if !t.Priority.IsValid() {
		return false
	}
	if t.Completed != (t.CompletedAt != nil) {
		return false
	}
	return true
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
