package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/nibzard/taskdeck/internal/store"
	"github.com/nibzard/taskdeck/internal/task"
)

// lsCommand lists tasks in insertion order, active by default.
func lsCommand(st store.Store, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdeck ls", flag.ContinueOnError)
	completed := fs.Bool("completed", false, "Show completed tasks")
	all := fs.Bool("all", false, "Show all tasks")
	categoryFilter := fs.String("category", "", "Comma-separated category filter")
	priorityFilter := fs.String("priority", "", "Comma-separated priority filter")
	verbose := fs.Bool("v", false, "Show more details")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks := loadTasks(st, logger)

	subset := tasks
	switch {
	case *all:
	case *completed:
		subset = task.Completed(tasks)
	default:
		subset = task.Active(tasks)
	}

	priorities, err := parsePriorities(*priorityFilter)
	if err != nil {
		return err
	}
	filtered := task.Filter(subset, splitAndTrim(*categoryFilter, ","), priorities)

	if len(filtered) == 0 {
		switch {
		case *all:
			fmt.Println("No tasks found.")
		case *completed:
			fmt.Println("No completed tasks yet.")
		default:
			fmt.Println("No active tasks. You're all caught up!")
		}
		return nil
	}

	for _, t := range filtered {
		printTask(t, *verbose)
	}
	fmt.Printf("\nShowing %d of %d task(s)\n", len(filtered), len(subset))
	return nil
}

// printTask prints a single task line.
func printTask(t task.Task, verbose bool) {
	check := " "
	title := t.Title
	if t.Completed {
		check = color.GreenString("x")
		title = color.New(color.Faint).Sprint(title)
	}
	fmt.Printf("  %3d. [%s] %s\n", t.ID, check, title)

	if verbose {
		category := t.Category
		if category == "" {
			category = "Uncategorized"
		}
		fmt.Printf("       Category: %s | Priority: %s\n", category, colorPriority(t.Priority))
	}
}

// colorPriority renders a priority label in its conventional color.
func colorPriority(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return color.RedString(string(p))
	case task.PriorityMedium:
		return color.YellowString(string(p))
	default:
		return color.GreenString(string(p))
	}
}

// padLabel right-pads a label for histogram alignment.
func padLabel(label string, width int) string {
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}
