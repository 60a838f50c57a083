package stats

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nibzard/taskdeck/internal/task"
)

func TestComputeCounts(t *testing.T) {
	l := task.List{
		{ID: 1, Title: "a", Priority: task.PriorityLow, Category: "Home"},
		{ID: 2, Title: "b", Priority: task.PriorityHigh, Category: "Work", Completed: true},
		{ID: 3, Title: "c", Priority: task.PriorityHigh, Category: "Work"},
		{ID: 4, Title: "d", Priority: task.PriorityMedium},
	}

	r := Compute(l)

	if r.Total != 4 {
		t.Errorf("Total: got %d, want 4", r.Total)
	}
	if r.Completed != 1 {
		t.Errorf("Completed: got %d, want 1", r.Completed)
	}
	if r.Remaining != 3 {
		t.Errorf("Remaining: got %d, want 3", r.Remaining)
	}
	if r.CompletionRate != 25.0 {
		t.Errorf("CompletionRate: got %v, want 25.0", r.CompletionRate)
	}

	wantPriorities := map[task.Priority]int{
		task.PriorityLow:    1,
		task.PriorityMedium: 1,
		task.PriorityHigh:   2,
	}
	if !reflect.DeepEqual(r.PriorityCounts, wantPriorities) {
		t.Errorf("PriorityCounts: got %v, want %v", r.PriorityCounts, wantPriorities)
	}

	wantCategories := map[string]int{
		"Home":        1,
		"Work":        2,
		Uncategorized: 1,
	}
	if !reflect.DeepEqual(r.CategoryCounts, wantCategories) {
		t.Errorf("CategoryCounts: got %v, want %v", r.CategoryCounts, wantCategories)
	}

	wantStatus := map[string]int{StatusActive: 3, StatusCompleted: 1}
	if !reflect.DeepEqual(r.StatusCounts, wantStatus) {
		t.Errorf("StatusCounts: got %v, want %v", r.StatusCounts, wantStatus)
	}
}

func TestComputeEmptyCollection(t *testing.T) {
	r := Compute(nil)

	if r.Total != 0 || r.Completed != 0 || r.Remaining != 0 {
		t.Errorf("counts should all be zero, got %+v", r)
	}
	if r.CompletionRate != 0 {
		t.Errorf("CompletionRate: got %v, want 0", r.CompletionRate)
	}
	if r.FormatRate() != "0.0%" {
		t.Errorf("FormatRate: got %q, want %q", r.FormatRate(), "0.0%")
	}
	if len(r.PriorityRows(20)) != 0 {
		t.Error("expected no priority rows")
	}
}

func TestCompletionRateRounding(t *testing.T) {
	tests := []struct {
		total, completed int
		want             float64
	}{
		{3, 1, 33.3},
		{3, 2, 66.7},
		{6, 1, 16.7},
		{8, 7, 87.5},
		{2, 2, 100.0},
	}

	for _, tt := range tests {
		var l task.List
		for i := 0; i < tt.total; i++ {
			l = append(l, task.Task{ID: i + 1, Title: "t", Completed: i < tt.completed})
		}
		if got := Compute(l).CompletionRate; got != tt.want {
			t.Errorf("%d of %d: got %v, want %v", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestComputeDefaultsMissingFields(t *testing.T) {
	r := Compute(task.List{{ID: 1, Title: "a"}})

	if r.PriorityCounts[task.PriorityLow] != 1 {
		t.Errorf("missing priority should count as Low, got %v", r.PriorityCounts)
	}
	if r.CategoryCounts[Uncategorized] != 1 {
		t.Errorf("empty category should count as Uncategorized, got %v", r.CategoryCounts)
	}
}

func TestPriorityRowsOrder(t *testing.T) {
	r := Compute(task.List{
		{ID: 1, Title: "a", Priority: task.PriorityHigh},
		{ID: 2, Title: "b", Priority: task.PriorityLow},
	})

	rows := r.PriorityRows(10)
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if rows[0].Label != "Low" || rows[1].Label != "High" {
		t.Errorf("order: got %q, %q; want Low, High", rows[0].Label, rows[1].Label)
	}
}

func TestCategoryRowsSortedByCount(t *testing.T) {
	r := Compute(task.List{
		{ID: 1, Title: "a", Category: "Work"},
		{ID: 2, Title: "b", Category: "Work"},
		{ID: 3, Title: "c", Category: "Home"},
		{ID: 4, Title: "d", Category: "Errands"},
	})

	rows := r.CategoryRows(10)
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	want := []string{"Work", "Errands", "Home"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels: got %v, want %v", labels, want)
	}
}

func TestFillBarsScaling(t *testing.T) {
	rows := fillBars([]HistogramRow{
		{Label: "a", Count: 10},
		{Label: "b", Count: 5},
		{Label: "c", Count: 1},
		{Label: "d", Count: 0},
	}, 10)

	if got := strings.Count(rows[0].Bar, "█"); got != 10 {
		t.Errorf("largest bar: got %d chars, want 10", got)
	}
	if got := strings.Count(rows[1].Bar, "█"); got != 5 {
		t.Errorf("half bar: got %d chars, want 5", got)
	}
	if got := strings.Count(rows[2].Bar, "█"); got != 1 {
		t.Errorf("non-zero count must get at least one char, got %d", got)
	}
	if rows[3].Bar != "" {
		t.Errorf("zero count must get an empty bar, got %q", rows[3].Bar)
	}
}
