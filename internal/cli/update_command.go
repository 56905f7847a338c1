package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/manager"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	manager manager.Manager
	printer *Printer
	errors  *ErrorHandler
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(root *RootCommand) *UpdateCommand {
	return &UpdateCommand{
		manager: root.manager,
		printer: root.printer,
		errors:  NewErrorHandler(),
	}
}

// Execute runs the update command
func (c *UpdateCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errors.HandleSimple(err)
	}

	var upd manager.TaskUpdate

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		upd.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		upd.Description = &description
	}
	if cmd.Flags().Changed("priority") {
		priorityFlag, _ := cmd.Flags().GetString("priority")
		priority, err := domain.ParsePriority(priorityFlag)
		if err != nil {
			return c.errors.HandleSimple(err)
		}
		upd.Priority = &priority
	}

	if upd.Title == nil && upd.Description == nil && upd.Priority == nil {
		return c.errors.HandleSimple(errors.NewInvalidInputError("flags", "", "nothing to update: provide --title, --description or --priority"))
	}

	task, err := c.manager.Update(ctx, id, upd)
	if err != nil {
		return c.errors.Handle("update task", err)
	}

	c.printer.Println("Task updated")
	c.printer.PrintTaskDetail(task)
	return nil
}
