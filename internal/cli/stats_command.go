package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-tracker/internal/manager"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	manager manager.Manager
	printer *Printer
	errors  *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(root *RootCommand) *StatsCommand {
	return &StatsCommand{
		manager: root.manager,
		printer: root.printer,
		errors:  NewErrorHandler(),
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	stats, err := c.manager.Stats(ctx)
	if err != nil {
		return c.errors.Handle("compute statistics", err)
	}

	c.printer.PrintStats(stats)
	return nil
}
