package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/logging"
	"task-tracker/internal/manager"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	manager manager.Manager
	config  *config.Config
	printer *Printer
}

// NewRootCommand creates the root cobra command with global flags.
// A nil manager is built from the resolved configuration once flags are
// parsed, so store location flags take effect; tests inject their own.
func NewRootCommand(mgr manager.Manager, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		manager: mgr,
		config:  cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tk",
		Short: "A command-line task tracker",
		Long: `Task Tracker (tk) is a command-line application for managing a personal
task list stored in a local JSON file.

EXAMPLES:
  tk add "Write report" -p high -d "Quarterly numbers"
  tk list -s pending -p high
  tk complete 3
  tk update 3 --title "Write Q3 report"
  tk delete 3
  tk stats
  tk clear-completed

CONFIGURATION:
  Settings cascade: defaults, then ~/.task-tracker/config.toml, then
  environment variables, then flags.

    TASKS_DIR                Store directory (default: ~/.task-tracker)
    TASKS_FILENAME           Store filename (default: tasks.json)
    TASKS_DEFAULT_PRIORITY   Priority when -p is omitted (default: medium)
    TASKS_COLOR              Colorized output (default: true)
    TASKS_TIMEOUT            Per-command timeout (default: 10s)
    TASKS_VERBOSE            Debug logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			if root.manager == nil {
				root.manager = manager.New(
					config.CreateStore(root.config),
					logging.NewDefault(root.config.Application.Verbose),
				)
			}
			root.printer = NewPrinter(cmd.OutOrStdout(), root.config)
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("tasks-dir", "", "Store directory (overrides TASKS_DIR)")
	flags.String("tasks-filename", "", "Store filename (overrides TASKS_FILENAME)")
	flags.Bool("no-color", false, "Disable colorized output (overrides TASKS_COLOR)")
	flags.Duration("timeout", 0, "Per-command timeout (overrides TASKS_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides TASKS_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long:  "Add a new task with an optional description and priority.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewAddCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}
	addCmd.Flags().StringP("priority", "p", "", "Task priority: high, medium or low")
	addCmd.Flags().StringP("description", "d", "", "Optional task description")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks with optional filtering. Filters combine with AND
semantics; tasks are shown in stored (id) order.

Examples:
  tk list                  # All tasks
  tk list -s pending       # Only pending tasks
  tk list -p high          # Only high priority tasks
  tk list -s pending -p low`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewListCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}
	listCmd.Flags().StringP("status", "s", "all", "Filter by status: all, completed or pending")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority: high, medium or low")

	completeCmd := &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewCompleteCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}

	uncompleteCmd := &cobra.Command{
		Use:   "uncomplete [id]",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewUncompleteCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task's title, description or priority",
		Long:  "Update only the provided fields of an existing task; omitted fields are unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewUpdateCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}
	updateCmd.Flags().String("title", "", "New task title")
	updateCmd.Flags().StringP("description", "d", "", "New task description")
	updateCmd.Flags().StringP("priority", "p", "", "New task priority: high, medium or low")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewDeleteCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long:  "Show overall task counts and pending tasks by priority.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewStatsCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}

	clearCompletedCmd := &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewClearCompletedCommand(r)
			return handler.Execute(ctx, cmd, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		completeCmd,
		uncompleteCmd,
		updateCmd,
		deleteCmd,
		statsCmd,
		clearCompletedCmd,
	)
}

// commandContext returns a context bounded by the configured timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := 10 * time.Second
	if r.config != nil && r.config.Application.Timeout > 0 {
		timeout = r.config.Application.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		r.config = config.NewConfig()
	}

	flags := r.cmd.PersistentFlags()

	if dir, _ := flags.GetString("tasks-dir"); dir != "" {
		r.config.Storage.Dir = dir
	}
	if filename, _ := flags.GetString("tasks-filename"); filename != "" {
		r.config.Storage.Filename = filename
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		r.config.Display.Color = false
	}
	if timeout, _ := flags.GetDuration("timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
