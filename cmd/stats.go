package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/nibzard/taskdeck/internal/stats"
	"github.com/nibzard/taskdeck/internal/store"
	"github.com/nibzard/taskdeck/internal/task"
)

const barWidth = 24

// statsCommand prints aggregate counts and histograms for the whole
// collection.
func statsCommand(st store.Store, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdeck stats", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks := loadTasks(st, logger)
	if len(tasks) == 0 {
		fmt.Println("No tasks to analyze yet.")
		return nil
	}

	report := stats.Compute(tasks)

	fmt.Println("Task Analytics")
	fmt.Println("==============")
	fmt.Println()
	fmt.Printf("  Total: %d  Completed: %d  Remaining: %d  Completion rate: %s\n",
		report.Total, report.Completed, report.Remaining, report.FormatRate())
	fmt.Println()

	printHistogram("By Priority", report.PriorityRows(barWidth), colorForPriority)
	printHistogram("By Category", report.CategoryRows(barWidth), nil)
	printHistogram("By Status", report.StatusRows(barWidth), colorForStatus)

	return nil
}

// printHistogram prints one labeled bar chart section. colorize, when
// non-nil, picks a color per label.
func printHistogram(title string, rows []stats.HistogramRow, colorize func(string) *color.Color) {
	if len(rows) == 0 {
		return
	}

	labelWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	fmt.Println(title)
	for _, row := range rows {
		bar := row.Bar
		if colorize != nil {
			bar = colorize(row.Label).Sprint(bar)
		}
		fmt.Printf("  %s  %s %d\n", padLabel(row.Label, labelWidth), bar, row.Count)
	}
	fmt.Println()
}

func colorForPriority(label string) *color.Color {
	switch task.Priority(label) {
	case task.PriorityHigh:
		return color.New(color.FgRed)
	case task.PriorityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func colorForStatus(label string) *color.Color {
	if label == stats.StatusCompleted {
		return color.New(color.FgGreen)
	}
	return color.New(color.FgBlue)
}
