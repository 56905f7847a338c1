package store

import "time"

// Task represents a task as persisted in the JSON store.
// Field names and tags match the on-disk format exactly; other tools
// consume the file as-is.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"` // nil marshals to null
}
