package domain

// ListFilter represents filter criteria for listing tasks.
// Both filters are optional and combine with AND semantics.
type ListFilter struct {
	Status   StatusFilter
	Priority *Priority
}

// Matches reports whether the task passes both filters.
func (f ListFilter) Matches(t Task) bool {
	if !f.Status.Matches(t.Completed) {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return true
}

// Apply returns the tasks matching the filter, preserving stored order.
func (f ListFilter) Apply(tasks []*Task) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(*t) {
			result = append(result, t)
		}
	}
	return result
}

// Stats holds task counts: overall totals plus pending tasks by priority.
type Stats struct {
	Total      int
	Completed  int
	Pending    int
	ByPriority map[Priority]int
}
