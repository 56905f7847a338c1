package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"task-tracker/internal/errors"
	"task-tracker/internal/manager"
)

// parseTaskID parses a positional task id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "must be a positive integer")
	}
	return id, nil
}

// CompleteCommand handles the complete command
type CompleteCommand struct {
	manager manager.Manager
	printer *Printer
	errors  *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(root *RootCommand) *CompleteCommand {
	return &CompleteCommand{
		manager: root.manager,
		printer: root.printer,
		errors:  NewErrorHandler(),
	}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errors.HandleSimple(err)
	}

	task, err := c.manager.Complete(ctx, id)
	if err != nil {
		return c.errors.Handle("complete task", err)
	}

	c.printer.Printf("Completed task %d: %s\n", task.ID, task.Title)
	return nil
}
