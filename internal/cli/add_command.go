package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
	"task-tracker/internal/manager"
)

// AddCommand handles the add command
type AddCommand struct {
	manager         manager.Manager
	printer         *Printer
	defaultPriority domain.Priority
	errors          *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(root *RootCommand) *AddCommand {
	defaultPriority := domain.DefaultPriority
	if root.config != nil {
		defaultPriority = root.config.DefaultPriority()
	}
	return &AddCommand{
		manager:         root.manager,
		printer:         root.printer,
		defaultPriority: defaultPriority,
		errors:          NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	title := args[0]

	description, _ := cmd.Flags().GetString("description")

	priority := c.defaultPriority
	if priorityFlag, _ := cmd.Flags().GetString("priority"); priorityFlag != "" {
		parsed, err := domain.ParsePriority(priorityFlag)
		if err != nil {
			return c.errors.HandleSimple(err)
		}
		priority = parsed
	}

	task, err := c.manager.Add(ctx, title, description, priority)
	if err != nil {
		return c.errors.Handle("add task", err)
	}

	c.printer.Println("Task added")
	c.printer.PrintTaskDetail(task)
	return nil
}
