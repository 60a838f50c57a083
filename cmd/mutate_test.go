package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nibzard/taskdeck/internal/store"
	"github.com/nibzard/taskdeck/internal/task"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestAddCommand(t *testing.T) {
	st := store.NewMemStore()

	err := addCommand(st, testLogger(), []string{"-priority", "High", "-category", "Work", "Write", "report"})
	if err != nil {
		t.Fatalf("addCommand failed: %v", err)
	}

	if len(st.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(st.Tasks))
	}
	got := st.Tasks[0]
	if got.ID != 1 {
		t.Errorf("id: got %d, want 1", got.ID)
	}
	if got.Title != "Write report" {
		t.Errorf("title: got %q, want %q", got.Title, "Write report")
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("priority: got %q, want High", got.Priority)
	}
	if got.Category != "Work" {
		t.Errorf("category: got %q, want Work", got.Category)
	}
	if got.Completed {
		t.Error("new task must start incomplete")
	}
}

func TestAddCommandRejectsBlankTitle(t *testing.T) {
	st := store.NewMemStore()

	err := addCommand(st, testLogger(), []string{"   "})
	if err == nil {
		t.Fatal("expected an error for a blank title")
	}
	if !strings.Contains(err.Error(), "task title") {
		t.Errorf("error should ask for a title, got %v", err)
	}
	if len(st.Tasks) != 0 {
		t.Errorf("store changed on rejected add: %+v", st.Tasks)
	}
}

func TestAddCommandRejectsBadPriority(t *testing.T) {
	st := store.NewMemStore()

	err := addCommand(st, testLogger(), []string{"-priority", "Urgent", "task"})
	if err == nil {
		t.Fatal("expected an error for an unknown priority")
	}
	if len(st.Tasks) != 0 {
		t.Errorf("store changed on rejected add: %+v", st.Tasks)
	}
}

func TestDoneAndUndoCommands(t *testing.T) {
	st := store.NewMemStore(task.Task{ID: 1, Title: "a", Priority: task.PriorityLow})

	if err := doneCommand(st, testLogger(), []string{"1"}); err != nil {
		t.Fatalf("doneCommand failed: %v", err)
	}
	if !st.Tasks[0].Completed {
		t.Error("task should be completed")
	}

	if err := undoCommand(st, testLogger(), []string{"1"}); err != nil {
		t.Fatalf("undoCommand failed: %v", err)
	}
	if st.Tasks[0].Completed {
		t.Error("task should be active again")
	}
}

func TestToggleUnknownIDIsNotAnError(t *testing.T) {
	st := store.NewMemStore(task.Task{ID: 1, Title: "a", Priority: task.PriorityLow})
	st.SaveErr = errors.New("save must not be called")

	if err := doneCommand(st, testLogger(), []string{"42"}); err != nil {
		t.Errorf("unknown id must not be an error, got %v", err)
	}
	if err := rmCommand(st, testLogger(), []string{"42"}); err != nil {
		t.Errorf("unknown id must not be an error, got %v", err)
	}
	if len(st.Tasks) != 1 {
		t.Errorf("store changed by no-op commands: %+v", st.Tasks)
	}
}

func TestDoneCommandRejectsBadID(t *testing.T) {
	st := store.NewMemStore()

	if err := doneCommand(st, testLogger(), nil); err == nil {
		t.Error("expected an error for a missing id")
	}
	if err := doneCommand(st, testLogger(), []string{"zero"}); err == nil {
		t.Error("expected an error for a non-numeric id")
	}
	if err := doneCommand(st, testLogger(), []string{"0"}); err == nil {
		t.Error("expected an error for id 0")
	}
}

func TestEditCommandKeepsOmittedFields(t *testing.T) {
	st := store.NewMemStore(task.Task{
		ID: 1, Title: "old", Category: "Home", Priority: task.PriorityMedium,
	})

	if err := editCommand(st, testLogger(), []string{"1", "-title", "new"}); err != nil {
		t.Fatalf("editCommand failed: %v", err)
	}

	got := st.Tasks[0]
	if got.Title != "new" {
		t.Errorf("title: got %q, want new", got.Title)
	}
	if got.Category != "Home" {
		t.Errorf("category changed: got %q, want Home", got.Category)
	}
	if got.Priority != task.PriorityMedium {
		t.Errorf("priority changed: got %q, want Medium", got.Priority)
	}
}

func TestRmCommand(t *testing.T) {
	st := store.NewMemStore(
		task.Task{ID: 1, Title: "a", Priority: task.PriorityLow},
		task.Task{ID: 2, Title: "b", Priority: task.PriorityLow},
	)

	if err := rmCommand(st, testLogger(), []string{"1"}); err != nil {
		t.Fatalf("rmCommand failed: %v", err)
	}
	if len(st.Tasks) != 1 || st.Tasks[0].ID != 2 {
		t.Errorf("unexpected tasks after delete: %+v", st.Tasks)
	}
}

func TestClearCommand(t *testing.T) {
	st := store.NewMemStore(
		task.Task{ID: 1, Title: "a", Completed: true},
		task.Task{ID: 2, Title: "b"},
		task.Task{ID: 3, Title: "c", Completed: true},
	)

	if err := clearCommand(st, testLogger(), nil); err != nil {
		t.Fatalf("clearCommand failed: %v", err)
	}
	if len(st.Tasks) != 1 || st.Tasks[0].ID != 2 {
		t.Errorf("expected only task 2 to remain, got %+v", st.Tasks)
	}
}

func TestClearCommandNothingToClear(t *testing.T) {
	st := store.NewMemStore(task.Task{ID: 1, Title: "a"})
	st.SaveErr = errors.New("save must not be called")

	if err := clearCommand(st, testLogger(), nil); err != nil {
		t.Errorf("clear with nothing to do must not be an error, got %v", err)
	}
}

func TestSaveErrorIsReported(t *testing.T) {
	st := store.NewMemStore(task.Task{ID: 1, Title: "a"})
	st.SaveErr = errors.New("disk full")

	err := doneCommand(st, testLogger(), []string{"1"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected the save error to surface, got %v", err)
	}
}
