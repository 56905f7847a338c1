package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
	"task-tracker/internal/manager"
)

// ListCommand handles the list command
type ListCommand struct {
	manager manager.Manager
	printer *Printer
	errors  *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(root *RootCommand) *ListCommand {
	return &ListCommand{
		manager: root.manager,
		printer: root.printer,
		errors:  NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	filter := domain.ListFilter{Status: domain.StatusAll}

	if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
		status, err := domain.ParseStatusFilter(statusFlag)
		if err != nil {
			return c.errors.HandleSimple(err)
		}
		filter.Status = status
	}

	if priorityFlag, _ := cmd.Flags().GetString("priority"); priorityFlag != "" {
		priority, err := domain.ParsePriority(priorityFlag)
		if err != nil {
			return c.errors.HandleSimple(err)
		}
		filter.Priority = &priority
	}

	tasks, err := c.manager.List(ctx, filter)
	if err != nil {
		return c.errors.Handle("list tasks", err)
	}

	c.printer.PrintTaskList(tasks)
	return nil
}
