package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-tracker/internal/manager"
)

// ClearCompletedCommand handles the clear-completed command
type ClearCompletedCommand struct {
	manager manager.Manager
	printer *Printer
	errors  *ErrorHandler
}

// NewClearCompletedCommand creates a new clear-completed command handler
func NewClearCompletedCommand(root *RootCommand) *ClearCompletedCommand {
	return &ClearCompletedCommand{
		manager: root.manager,
		printer: root.printer,
		errors:  NewErrorHandler(),
	}
}

// Execute runs the clear-completed command
func (c *ClearCompletedCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	removed, err := c.manager.ClearCompleted(ctx)
	if err != nil {
		return c.errors.Handle("clear completed tasks", err)
	}

	if removed == 0 {
		c.printer.Println("No completed tasks to clear")
		return nil
	}
	c.printer.Printf("Cleared %d completed task(s)\n", removed)
	return nil
}
