package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/taskdeck/internal/store"
	"github.com/nibzard/taskdeck/internal/task"
)

// Every mutating command is a whole-collection cycle: load, change the
// in-memory list, save it back. There are no partial writes.

// addCommand appends a new task.
func addCommand(st store.Store, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdeck add", flag.ContinueOnError)
	priority := fs.String("priority", "Low", "Priority (Low|Medium|High)")
	category := fs.String("category", "", "Category")

	if err := fs.Parse(args); err != nil {
		return err
	}
	title := strings.Join(fs.Args(), " ")

	if !task.IsValidPriority(*priority) {
		return fmt.Errorf("invalid priority %q (expected Low|Medium|High)", *priority)
	}

	tasks := loadTasks(st, logger)
	added, err := tasks.Add(title, *category, task.NormalizePriority(*priority))
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) {
			return fmt.Errorf("please enter a task title")
		}
		return err
	}
	if err := st.Save(tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	fmt.Printf("Added task %d: %s\n", added.ID, added.Title)
	return nil
}

// doneCommand marks a task completed.
func doneCommand(st store.Store, logger *log.Logger, args []string) error {
	return toggleCommand(st, logger, args, true)
}

// undoCommand marks a task not completed.
func undoCommand(st store.Store, logger *log.Logger, args []string) error {
	return toggleCommand(st, logger, args, false)
}

// toggleCommand flips the completed flag of a single task. An unknown id
// does nothing and is not an error.
func toggleCommand(st store.Store, logger *log.Logger, args []string, completed bool) error {
	if len(args) < 1 {
		return fmt.Errorf("missing task id")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	tasks := loadTasks(st, logger)
	var found bool
	if completed {
		found = tasks.Complete(id)
	} else {
		found = tasks.Uncomplete(id)
	}
	if !found {
		fmt.Printf("No task with id %d.\n", id)
		return nil
	}
	if err := st.Save(tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	t := tasks.Find(id)
	if completed {
		fmt.Printf("Completed task %d: %s\n", id, t.Title)
	} else {
		fmt.Printf("Reopened task %d: %s\n", id, t.Title)
	}
	return nil
}

// editCommand replaces a task's title, category, and priority. Fields not
// given on the command line keep their current value.
func editCommand(st store.Store, logger *log.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing task id")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("taskdeck edit", flag.ContinueOnError)
	title := fs.String("title", "", "New title")
	category := fs.String("category", "", "New category")
	priority := fs.String("priority", "", "New priority (Low|Medium|High)")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *priority != "" && !task.IsValidPriority(*priority) {
		return fmt.Errorf("invalid priority %q (expected Low|Medium|High)", *priority)
	}

	tasks := loadTasks(st, logger)
	current := tasks.Find(id)
	if current == nil {
		fmt.Printf("No task with id %d.\n", id)
		return nil
	}

	newTitle := current.Title
	if *title != "" {
		newTitle = *title
	}
	newCategory := current.Category
	if *category != "" {
		newCategory = *category
	}
	newPriority := current.Priority
	if *priority != "" {
		newPriority = task.NormalizePriority(*priority)
	}

	tasks.Edit(id, newTitle, newCategory, newPriority)
	if err := st.Save(tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	fmt.Printf("Updated task %d\n", id)
	return nil
}

// rmCommand deletes a task.
func rmCommand(st store.Store, logger *log.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing task id")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	tasks := loadTasks(st, logger)
	if !tasks.Delete(id) {
		fmt.Printf("No task with id %d.\n", id)
		return nil
	}
	if err := st.Save(tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	fmt.Printf("Deleted task %d\n", id)
	return nil
}

// clearCommand removes every completed task in one pass.
func clearCommand(st store.Store, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdeck clear", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks := loadTasks(st, logger)
	removed := tasks.ClearCompleted()
	if removed == 0 {
		fmt.Println("No completed tasks to clear.")
		return nil
	}
	if err := st.Save(tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	fmt.Printf("Cleared %d completed task(s)\n", removed)
	return nil
}
