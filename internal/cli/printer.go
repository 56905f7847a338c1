package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// Printer renders tasks and statistics to the command output.
type Printer struct {
	out        io.Writer
	timeFormat string
	color      bool

	highStyle   lipgloss.Style
	mediumStyle lipgloss.Style
	lowStyle    lipgloss.Style
	doneStyle   lipgloss.Style
	dimStyle    lipgloss.Style
	headerStyle lipgloss.Style
}

// NewPrinter creates a printer honoring the display configuration.
func NewPrinter(out io.Writer, cfg *config.Config) *Printer {
	p := &Printer{
		out:        out,
		timeFormat: "2006-01-02 15:04",
		color:      true,
	}
	if cfg != nil {
		p.timeFormat = cfg.Display.TimeFormat
		p.color = cfg.Display.Color
	}

	if p.color {
		p.highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		p.mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		p.lowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		p.doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		p.dimStyle = lipgloss.NewStyle().Faint(true)
		p.headerStyle = lipgloss.NewStyle().Bold(true)
	}

	return p
}

// priorityStyle returns the style for a priority level.
func (p *Printer) priorityStyle(priority domain.Priority) lipgloss.Style {
	switch priority {
	case domain.PriorityHigh:
		return p.highStyle
	case domain.PriorityLow:
		return p.lowStyle
	default:
		return p.mediumStyle
	}
}

// statusGlyph returns the completion marker for a task.
func (p *Printer) statusGlyph(completed bool) string {
	if completed {
		return p.doneStyle.Render("✓")
	}
	return p.dimStyle.Render("·")
}

// PrintTask prints a one-line summary of a task.
func (p *Printer) PrintTask(t *domain.Task) {
	fmt.Fprintf(p.out, "%s %3d  %-6s  %s\n",
		p.statusGlyph(t.Completed),
		t.ID,
		p.priorityStyle(t.Priority).Render(string(t.Priority)),
		t.Title,
	)
}

// PrintTaskDetail prints a task with all its fields.
func (p *Printer) PrintTaskDetail(t *domain.Task) {
	fmt.Fprintf(p.out, "%s %s\n", p.headerStyle.Render(fmt.Sprintf("#%d", t.ID)), t.Title)
	if t.Description != "" {
		fmt.Fprintf(p.out, "    %s\n", t.Description)
	}
	fmt.Fprintf(p.out, "    priority: %s\n", p.priorityStyle(t.Priority).Render(string(t.Priority)))
	fmt.Fprintf(p.out, "    created:  %s\n", t.CreatedAt.Local().Format(p.timeFormat))
	if t.Completed && t.CompletedAt != nil {
		fmt.Fprintf(p.out, "    done:     %s\n", t.CompletedAt.Local().Format(p.timeFormat))
	}
}

// PrintTaskList prints a list of tasks, one line each.
func (p *Printer) PrintTaskList(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(p.out, "No tasks found")
		return
	}
	for _, t := range tasks {
		p.PrintTask(t)
	}
}

// PrintStats prints overall task counts and the pending-by-priority
// breakdown.
func (p *Printer) PrintStats(stats *domain.Stats) {
	fmt.Fprintln(p.out, p.headerStyle.Render("Tasks"))
	fmt.Fprintf(p.out, "  total:     %d\n", stats.Total)
	fmt.Fprintf(p.out, "  completed: %d\n", stats.Completed)
	fmt.Fprintf(p.out, "  pending:   %d\n", stats.Pending)

	fmt.Fprintln(p.out, p.headerStyle.Render("Pending by priority"))
	for _, priority := range domain.Priorities() {
		label := p.priorityStyle(priority).Render(string(priority))
		padding := strings.Repeat(" ", 7-len(priority))
		fmt.Fprintf(p.out, "  %s:%s%d\n", label, padding, stats.ByPriority[priority])
	}
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line of output.
func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}
