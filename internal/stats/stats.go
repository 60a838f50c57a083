// Package stats computes descriptive analytics over the task collection.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/nibzard/taskdeck/internal/task"
)

// Status labels used in the status histogram.
const (
	StatusCompleted = "Completed"
	StatusActive    = "Active"
)

// Uncategorized is the histogram label for tasks without a category.
const Uncategorized = "Uncategorized"

// Report holds aggregate counts and histograms for a collection. It is
// recomputed from the full collection on every request; nothing is cached.
type Report struct {
	Total          int
	Completed      int
	Remaining      int
	CompletionRate float64 // percent, rounded to 1 decimal; 0 when Total is 0

	PriorityCounts map[task.Priority]int
	CategoryCounts map[string]int
	StatusCounts   map[string]int
}

// Compute builds a Report from the full collection. Missing priorities
// count as Low and empty categories as Uncategorized, matching how the
// records are displayed.
func Compute(l task.List) Report {
	r := Report{
		PriorityCounts: make(map[task.Priority]int),
		CategoryCounts: make(map[string]int),
		StatusCounts:   make(map[string]int),
	}

	for _, t := range l {
		r.Total++
		if t.Completed {
			r.Completed++
			r.StatusCounts[StatusCompleted]++
		} else {
			r.StatusCounts[StatusActive]++
		}

		r.PriorityCounts[task.NormalizePriority(string(t.Priority))]++

		category := t.Category
		if category == "" {
			category = Uncategorized
		}
		r.CategoryCounts[category]++
	}

	r.Remaining = r.Total - r.Completed
	if r.Total > 0 {
		r.CompletionRate = round1(float64(r.Completed) / float64(r.Total) * 100)
	}

	return r
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// HistogramRow is one labeled bar of a rendered histogram.
type HistogramRow struct {
	Label string
	Count int
	Bar   string
}

// PriorityRows returns histogram rows for the priority distribution in
// Low, Medium, High order, omitting absent priorities.
func (r Report) PriorityRows(width int) []HistogramRow {
	var rows []HistogramRow
	for _, p := range task.Priorities() {
		if count, ok := r.PriorityCounts[p]; ok {
			rows = append(rows, HistogramRow{Label: string(p), Count: count})
		}
	}
	return fillBars(rows, width)
}

// CategoryRows returns histogram rows for the category distribution,
// sorted by descending count, ties broken alphabetically.
func (r Report) CategoryRows(width int) []HistogramRow {
	rows := make([]HistogramRow, 0, len(r.CategoryCounts))
	for label, count := range r.CategoryCounts {
		rows = append(rows, HistogramRow{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return fillBars(rows, width)
}

// StatusRows returns histogram rows for Completed vs Active.
func (r Report) StatusRows(width int) []HistogramRow {
	var rows []HistogramRow
	for _, label := range []string{StatusActive, StatusCompleted} {
		if count, ok := r.StatusCounts[label]; ok {
			rows = append(rows, HistogramRow{Label: label, Count: count})
		}
	}
	return fillBars(rows, width)
}

// fillBars scales each row's bar to width characters relative to the
// largest count. Every non-zero count gets at least one bar character.
func fillBars(rows []HistogramRow, width int) []HistogramRow {
	if width <= 0 {
		width = 20
	}
	max := 0
	for _, row := range rows {
		if row.Count > max {
			max = row.Count
		}
	}
	if max == 0 {
		return rows
	}
	for i := range rows {
		n := rows[i].Count * width / max
		if n == 0 && rows[i].Count > 0 {
			n = 1
		}
		rows[i].Bar = strings.Repeat("█", n)
	}
	return rows
}

// FormatRate formats the completion rate for display, e.g. "25.0%".
func (r Report) FormatRate() string {
	return fmt.Sprintf("%.1f%%", r.CompletionRate)
}
