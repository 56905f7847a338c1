package manager

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/store"
	"task-tracker/internal/validation"
)

// timeNow is a variable so tests can control timestamps.
var timeNow = time.Now

// TaskUpdate carries the fields to change on a task. Nil fields are left
// unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *domain.Priority
}

// Manager defines the interface for all task operations. Every mutating
// operation loads the stored collection, applies the change in memory and
// persists the whole collection back, so the on-disk state is either fully
// updated or untouched.
type Manager interface {
	Add(ctx context.Context, title, description string, priority domain.Priority) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, error)
	Update(ctx context.Context, id int64, upd TaskUpdate) (*domain.Task, error)
	Complete(ctx context.Context, id int64) (*domain.Task, error)
	Uncomplete(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
	ClearCompleted(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type managerImpl struct {
	store         store.Store
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
	logger        *log.Logger
}

// New creates a new Manager backed by the given store.
func New(st store.Store, logger *log.Logger) Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &managerImpl{
		store:         st,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidator(),
		logger:        logger,
	}
}

// load reads the stored collection into domain tasks.
func (m *managerImpl) load(ctx context.Context) ([]*domain.Task, error) {
	storeTasks, err := m.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return m.mapper.FromStoreSlice(storeTasks), nil
}

// save persists the full domain collection.
func (m *managerImpl) save(ctx context.Context, tasks []*domain.Task) error {
	return m.store.Save(ctx, m.mapper.ToStoreSlice(tasks))
}

// find returns the index of the task with the given id, or -1.
func find(tasks []*domain.Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add creates a new task, assigns the next id and persists it.
func (m *managerImpl) Add(ctx context.Context, title, description string, priority domain.Priority) (*domain.Task, error) {
	cleanedTitle, err := m.taskValidator.GetValidTitle(title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}
	if err := m.taskValidator.ValidatePriority(priority); err != nil {
		return nil, errors.NewValidationError("invalid task priority", err)
	}

	tasks, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(cleanedTitle, description, priority, timeNow())
	task.ID = store.NextID(m.mapper.ToStoreSlice(tasks))
	tasks = append(tasks, &task)

	if err := m.save(ctx, tasks); err != nil {
		return nil, err
	}

	m.logger.Debug("task added", "id", task.ID, "priority", task.Priority)
	return &task, nil
}

// Get returns a single task by id.
func (m *managerImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := m.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	tasks, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := find(tasks, id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return tasks[idx], nil
}

// List returns the tasks matching the filter in stored (id) order.
// An empty result is valid.
func (m *managerImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, error) {
	if filter.Status == "" {
		filter.Status = domain.StatusAll
	}

	tasks, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(tasks), nil
}

// Update applies the provided fields to an existing task and persists it.
func (m *managerImpl) Update(ctx context.Context, id int64, upd TaskUpdate) (*domain.Task, error) {
	if err := m.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	var cleanedTitle string
	if upd.Title != nil {
		cleaned, err := m.taskValidator.GetValidTitle(*upd.Title)
		if err != nil {
			return nil, errors.NewValidationError("invalid task title", err)
		}
		cleanedTitle = cleaned
	}
	if upd.Priority != nil {
		if err := m.taskValidator.ValidatePriority(*upd.Priority); err != nil {
			return nil, errors.NewValidationError("invalid task priority", err)
		}
	}

	tasks, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := find(tasks, id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	task := *tasks[idx]
	if upd.Title != nil {
		task.Title = cleanedTitle
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	tasks[idx] = &task

	if err := m.save(ctx, tasks); err != nil {
		return nil, err
	}

	m.logger.Debug("task updated", "id", task.ID)
	return &task, nil
}

// Complete marks a task completed, stamping completed_at with the current
// time. Completing an already-completed task refreshes the stamp.
func (m *managerImpl) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	return m.setCompletion(ctx, id, true)
}

// Uncomplete reopens a task, clearing completed_at regardless of prior
// state.
func (m *managerImpl) Uncomplete(ctx context.Context, id int64) (*domain.Task, error) {
	return m.setCompletion(ctx, id, false)
}

func (m *managerImpl) setCompletion(ctx context.Context, id int64, completed bool) (*domain.Task, error) {
	if err := m.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	tasks, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := find(tasks, id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	var task domain.Task
	if completed {
		task = tasks[idx].Complete(timeNow())
	} else {
		task = tasks[idx].Reopen()
	}
	tasks[idx] = &task

	if err := m.save(ctx, tasks); err != nil {
		return nil, err
	}

	m.logger.Debug("task completion changed", "id", task.ID, "completed", completed)
	return &task, nil
}

// Delete removes a task and persists the remaining collection.
func (m *managerImpl) Delete(ctx context.Context, id int64) error {
	if err := m.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task id", err)
	}

	tasks, err := m.load(ctx)
	if err != nil {
		return err
	}

	idx := find(tasks, id)
	if idx < 0 {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	tasks = append(tasks[:idx], tasks[idx+1:]...)
	if err := m.save(ctx, tasks); err != nil {
		return err
	}

	m.logger.Debug("task deleted", "id", id)
	return nil
}

// ClearCompleted removes every completed task, returning the count removed.
// It always succeeds; a zero count is valid and skips the write.
func (m *managerImpl) ClearCompleted(ctx context.Context) (int, error) {
	tasks, err := m.load(ctx)
	if err != nil {
		return 0, err
	}

	remaining := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}

	removed := len(tasks) - len(remaining)
	if removed == 0 {
		return 0, nil
	}

	if err := m.save(ctx, remaining); err != nil {
		return 0, err
	}

	m.logger.Debug("completed tasks cleared", "removed", removed)
	return removed, nil
}

// Stats returns overall task counts plus pending tasks broken down by
// priority. Completed tasks appear only in the completed total.
func (m *managerImpl) Stats(ctx context.Context) (*domain.Stats, error) {
	tasks, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		ByPriority: map[domain.Priority]int{
			domain.PriorityHigh:   0,
			domain.PriorityMedium: 0,
			domain.PriorityLow:    0,
		},
	}

	for _, t := range tasks {
		stats.Total++
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		stats.ByPriority[t.Priority]++
	}

	return stats, nil
}
