package cli

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/manager"
)

// mockManager implements the Manager interface for testing with an
// in-memory task collection.
type mockManager struct {
	tasks    map[int64]*domain.Task
	nextID   int64
	failWith error
}

// newMockManager creates a new mock Manager instance
func newMockManager() *mockManager {
	return &mockManager{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

func (m *mockManager) Add(ctx context.Context, title, description string, priority domain.Priority) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	cleaned := strings.TrimSpace(title)
	if cleaned == "" {
		return nil, errors.NewValidationError("invalid task title", nil)
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid task priority", nil)
	}

	task := domain.NewTask(cleaned, description, priority, time.Now())
	task.ID = m.nextID
	m.nextID++
	m.tasks[task.ID] = &task
	return &task, nil
}

func (m *mockManager) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return task, nil
}

func (m *mockManager) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	if filter.Status == "" {
		filter.Status = domain.StatusAll
	}

	all := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		all = append(all, task)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return filter.Apply(all), nil
}

func (m *mockManager) Update(ctx context.Context, id int64, upd manager.TaskUpdate) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	if upd.Title != nil {
		cleaned := strings.TrimSpace(*upd.Title)
		if cleaned == "" {
			return nil, errors.NewValidationError("invalid task title", nil)
		}
		task.Title = cleaned
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	return task, nil
}

func (m *mockManager) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	completed := task.Complete(time.Now())
	m.tasks[id] = &completed
	return &completed, nil
}

func (m *mockManager) Uncomplete(ctx context.Context, id int64) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	reopened := task.Reopen()
	m.tasks[id] = &reopened
	return &reopened, nil
}

func (m *mockManager) Delete(ctx context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}

	if _, exists := m.tasks[id]; !exists {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockManager) ClearCompleted(ctx context.Context) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}

	removed := 0
	for id, task := range m.tasks {
		if task.Completed {
			delete(m.tasks, id)
			removed++
		}
	}
	return removed, nil
}

func (m *mockManager) Stats(ctx context.Context) (*domain.Stats, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	stats := &domain.Stats{
		ByPriority: map[domain.Priority]int{
			domain.PriorityHigh:   0,
			domain.PriorityMedium: 0,
			domain.PriorityLow:    0,
		},
	}
	for _, task := range m.tasks {
		stats.Total++
		if task.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		stats.ByPriority[task.Priority]++
	}
	return stats, nil
}

// executeCommand runs the CLI with the given manager and arguments,
// capturing output. Color is disabled so assertions see plain text.
func executeCommand(t *testing.T, mgr manager.Manager, args ...string) (string, error) {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Display.Color = false

	root := NewRootCommand(mgr, cfg)

	buf := new(bytes.Buffer)
	root.cmd.SetOut(buf)
	root.cmd.SetErr(buf)
	root.cmd.SetArgs(args)

	err := root.cmd.Execute()
	return buf.String(), err
}
