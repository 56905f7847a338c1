package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-tracker/internal/manager"
)

// UncompleteCommand handles the uncomplete command
type UncompleteCommand struct {
	manager manager.Manager
	printer *Printer
	errors  *ErrorHandler
}

// NewUncompleteCommand creates a new uncomplete command handler
func NewUncompleteCommand(root *RootCommand) *UncompleteCommand {
	return &UncompleteCommand{
		manager: root.manager,
		printer: root.printer,
		errors:  NewErrorHandler(),
	}
}

// Execute runs the uncomplete command
func (c *UncompleteCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errors.HandleSimple(err)
	}

	task, err := c.manager.Uncomplete(ctx, id)
	if err != nil {
		return c.errors.Handle("reopen task", err)
	}

	c.printer.Printf("Reopened task %d: %s\n", task.ID, task.Title)
	return nil
}
