package domain

import (
	"task-tracker/internal/store"
)

// TaskMapper handles conversion between domain and stored Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToStore converts a domain Task to a stored Task.
func (m *TaskMapper) ToStore(domainTask Task) store.Task {
	return store.Task{
		ID:          domainTask.ID,
		Title:       domainTask.Title,
		Description: domainTask.Description,
		Priority:    string(domainTask.Priority),
		Completed:   domainTask.Completed,
		CreatedAt:   domainTask.CreatedAt,
		CompletedAt: domainTask.CompletedAt,
	}
}

// FromStore converts a stored Task to a domain Task.
func (m *TaskMapper) FromStore(storeTask store.Task) Task {
	return Task{
		ID:          storeTask.ID,
		Title:       storeTask.Title,
		Description: storeTask.Description,
		Priority:    Priority(storeTask.Priority),
		Completed:   storeTask.Completed,
		CreatedAt:   storeTask.CreatedAt,
		CompletedAt: storeTask.CompletedAt,
	}
}

// ToStoreSlice converts a slice of domain Tasks to stored Tasks.
func (m *TaskMapper) ToStoreSlice(domainTasks []*Task) []*store.Task {
	storeTasks := make([]*store.Task, len(domainTasks))
	for i, task := range domainTasks {
		storeTask := m.ToStore(*task)
		storeTasks[i] = &storeTask
	}
	return storeTasks
}

// FromStoreSlice converts a slice of stored Tasks to domain Tasks.
func (m *TaskMapper) FromStoreSlice(storeTasks []*store.Task) []*Task {
	domainTasks := make([]*Task, len(storeTasks))
	for i, task := range storeTasks {
		domainTask := m.FromStore(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}
