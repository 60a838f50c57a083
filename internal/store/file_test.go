package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nibzard/taskdeck/internal/task"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	st := NewFileStore(path)

	want := task.List{
		{ID: 1, Title: "Buy milk", Priority: task.PriorityLow, Category: "Home"},
		{ID: 2, Title: "Write report", Priority: task.PriorityHigh, Category: "Work", Completed: true},
	}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestFileStoreLoadMissingFileInitializes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	st := NewFileStore(path)

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected the file to be created: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("initialized file content: got %q, want %q", data, "[]")
	}
}

func TestFileStoreLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Load()
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	if len(got) != 0 {
		t.Errorf("expected empty list alongside the error, got %+v", got)
	}
}

func TestFileStoreLoadNonArrayJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := os.WriteFile(path, []byte(`"not a list"`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Load()
	if err == nil {
		t.Fatal("expected an error for non-array content")
	}
	if !strings.Contains(err.Error(), "not a JSON array") {
		t.Errorf("error should name the shape problem, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list alongside the error, got %+v", got)
	}
}

func TestFileStoreLoadNormalizesPriorities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	content := `[{"id": 1, "title": "a", "priority": "", "category": "", "completed": false}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got[0].Priority != task.PriorityLow {
		t.Errorf("missing priority: got %q, want Low", got[0].Priority)
	}
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStore(filepath.Join(dir, "todos.json"))

	if err := st.Save(task.List{{ID: 1, Title: "a", Priority: task.PriorityLow}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "todos.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("unexpected directory contents: %v", names)
	}
}

func TestFileStoreSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "todos.json")
	if err := NewFileStore(path).Save(task.List{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestMarshalFormat(t *testing.T) {
	data, err := Marshal(task.List{
		{ID: 1, Title: "Read <War & Peace>", Priority: task.PriorityLow, Category: "Books"},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)

	if !strings.HasSuffix(out, "\n") {
		t.Error("output must end with a newline")
	}
	if !strings.Contains(out, "  \"id\": 1") {
		t.Error("output must be indented with two spaces")
	}
	if !strings.Contains(out, "Read <War & Peace>") {
		t.Errorf("HTML characters must survive verbatim, got %q", out)
	}
}

func TestMarshalNilList(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil list: got %q, want %q", data, "[]")
	}
}
