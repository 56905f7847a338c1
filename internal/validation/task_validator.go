package validation

import (
	"strings"

	"task-tracker/internal/domain"
)

// Title length limits applied after trimming.
const (
	titleMinLength = 1
	titleMaxLength = 255
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		validationError.AddRequiredError("title")
		return validationError
	}

	if len(trimmed) > titleMaxLength {
		validationError.AddInvalidLengthError("title", trimmed, titleMinLength, titleMaxLength)
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if id <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidatePriority validates that a priority is one of the enumerated values
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if !priority.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", priority, "must be high, medium or low")
		return validationError
	}
	return nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(task.Title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority, "must be high, medium or low")
	}

	if task.ID != 0 && task.ID < 0 {
		validationError.AddInvalidValueError("id", task.ID, "must be a positive integer")
	}

	if task.Completed != (task.CompletedAt != nil) {
		validationError.AddInvalidValueError("completed_at", task.CompletedAt, "must be set exactly when the task is completed")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTitle returns a trimmed title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return strings.TrimSpace(title), nil
}
