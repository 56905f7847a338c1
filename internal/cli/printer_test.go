package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

func newTestPrinter() (*Printer, *bytes.Buffer) {
	cfg := config.NewConfig()
	cfg.Display.Color = false

	buf := new(bytes.Buffer)
	return NewPrinter(buf, cfg), buf
}

func TestPrinter_PrintTask(t *testing.T) {
	printer, buf := newTestPrinter()
	task := domain.NewTask("Write report", "", domain.PriorityHigh, time.Now())
	task.ID = 7

	printer.PrintTask(&task)

	output := buf.String()
	assert.Contains(t, output, "7")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "Write report")
	assert.Contains(t, output, "·")
}

func TestPrinter_PrintTask_Completed(t *testing.T) {
	printer, buf := newTestPrinter()
	task := domain.NewTask("Write report", "", domain.PriorityHigh, time.Now())
	task.ID = 7
	task = task.Complete(time.Now())

	printer.PrintTask(&task)

	assert.Contains(t, buf.String(), "✓")
}

func TestPrinter_PrintTaskDetail(t *testing.T) {
	printer, buf := newTestPrinter()
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	task := domain.NewTask("Write report", "Quarterly numbers", domain.PriorityMedium, created)
	task.ID = 3

	printer.PrintTaskDetail(&task)

	output := buf.String()
	assert.Contains(t, output, "#3 Write report")
	assert.Contains(t, output, "Quarterly numbers")
	assert.Contains(t, output, "priority: medium")
	assert.Contains(t, output, "created:  2024-03-01 09:30")
	assert.NotContains(t, output, "done:")
}

func TestPrinter_PrintTaskDetail_Completed(t *testing.T) {
	printer, buf := newTestPrinter()
	task := domain.NewTask("Write report", "", domain.PriorityLow, time.Now())
	task.ID = 3
	task = task.Complete(time.Date(2024, 3, 2, 18, 0, 0, 0, time.Local))

	printer.PrintTaskDetail(&task)

	assert.Contains(t, buf.String(), "done:     2024-03-02 18:00")
}

func TestPrinter_PrintTaskDetail_SkipsEmptyDescription(t *testing.T) {
	printer, buf := newTestPrinter()
	task := domain.NewTask("Write report", "", domain.PriorityHigh, time.Now())
	task.ID = 1

	printer.PrintTaskDetail(&task)

	assert.NotContains(t, buf.String(), "    \n")
}

func TestPrinter_PrintTaskList_Empty(t *testing.T) {
	printer, buf := newTestPrinter()

	printer.PrintTaskList(nil)

	assert.Equal(t, "No tasks found\n", buf.String())
}

func TestPrinter_PrintStats(t *testing.T) {
	printer, buf := newTestPrinter()
	stats := &domain.Stats{
		Total:     5,
		Completed: 2,
		Pending:   3,
		ByPriority: map[domain.Priority]int{
			domain.PriorityHigh:   1,
			domain.PriorityMedium: 2,
			domain.PriorityLow:    0,
		},
	}

	printer.PrintStats(stats)

	output := buf.String()
	assert.Contains(t, output, "total:     5")
	assert.Contains(t, output, "completed: 2")
	assert.Contains(t, output, "pending:   3")
	assert.Contains(t, output, "high:   1")
	assert.Contains(t, output, "medium: 2")
	assert.Contains(t, output, "low:    0")
}
