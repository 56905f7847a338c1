package domain

import "fmt"

// Priority represents a task priority level.
// It is a closed enumeration; anything else is rejected at the boundary.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when no priority is supplied.
const DefaultPriority = PriorityMedium

// Priorities returns all valid priorities, highest first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority parses a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	default:
		return "", fmt.Errorf("invalid priority %q (expected high, medium or low)", s)
	}
}

// IsValid reports whether the priority is one of the enumerated values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Weight returns a numeric rank for the priority, higher is more urgent.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// String returns the priority name.
func (p Priority) String() string {
	return string(p)
}
