package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-tracker/internal/manager"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	manager manager.Manager
	printer *Printer
	errors  *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(root *RootCommand) *DeleteCommand {
	return &DeleteCommand{
		manager: root.manager,
		printer: root.printer,
		errors:  NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errors.HandleSimple(err)
	}

	if err := c.manager.Delete(ctx, id); err != nil {
		return c.errors.Handle("delete task", err)
	}

	c.printer.Printf("Deleted task %d\n", id)
	return nil
}
