package domain

import "fmt"

// StatusFilter selects tasks by completion state when listing.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusCompleted StatusFilter = "completed"
	StatusPending   StatusFilter = "pending"
)

// ParseStatusFilter parses a string into a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case StatusAll, StatusCompleted, StatusPending:
		return StatusFilter(s), nil
	default:
		return "", fmt.Errorf("invalid status %q (expected all, completed or pending)", s)
	}
}

// Matches reports whether a task's completion state passes the filter.
func (sf StatusFilter) Matches(completed bool) bool {
	switch sf {
	case StatusCompleted:
		return completed
	case StatusPending:
		return !completed
	default:
		return true
	}
}

// String returns the filter name.
func (sf StatusFilter) String() string {
	return string(sf)
}
