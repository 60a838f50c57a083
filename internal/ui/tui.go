// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/taskdeck/internal/config"
	"github.com/nibzard/taskdeck/internal/stats"
	"github.com/nibzard/taskdeck/internal/store"
	"github.com/nibzard/taskdeck/internal/task"
)

// view identifies a TUI screen.
type view int

const (
	viewActive view = iota
	viewCompleted
	viewStats
)

const chartWidth = 24

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	noticeStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	highStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// RunTUI starts the terminal UI over the configured task file.
func RunTUI(ctx context.Context, cfg *config.Config) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	cfg   *config.Config
	store store.Store

	tasks    task.List
	loadErr  error
	saveErr  error
	notice   string
	view     view
	cursor   int
	showHelp bool

	// Filters (transient UI state, never persisted)
	priorityFilter task.Priority
	categoryFilter string

	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(cfg *config.Config) *tuiModel {
	return &tuiModel{
		cfg:          cfg,
		store:        store.NewFileStore(cfg.DataFile),
		tickInterval: 2 * time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.view = (m.view + 1) % 3
		m.cursor = 0
		return m, nil
	case "r", "f5":
		m.refresh()
		return m, nil
	case "h", "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case " ", "x":
		m.toggleUnderCursor()
		return m, nil
	case "d":
		m.deleteUnderCursor()
		return m, nil
	case "C":
		m.clearCompleted()
		return m, nil
	case "1":
		m.setPriorityFilter(task.PriorityLow)
		return m, nil
	case "2":
		m.setPriorityFilter(task.PriorityMedium)
		return m, nil
	case "3":
		m.setPriorityFilter(task.PriorityHigh)
		return m, nil
	case "c":
		m.cycleCategoryFilter()
		return m, nil
	case "0":
		m.priorityFilter = ""
		m.categoryFilter = ""
		m.cursor = 0
		return m, nil
	}
	return m, nil
}

// refresh re-reads the full collection from disk.
func (m *tuiModel) refresh() {
	tasks, err := m.store.Load()
	m.tasks = tasks
	m.loadErr = err
	if m.cursor >= len(m.visible()) && m.cursor > 0 {
		m.cursor = len(m.visible()) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
}

// visible returns the tasks shown in the current list view, filters
// applied.
func (m *tuiModel) visible() task.List {
	if m.view == viewStats {
		return nil
	}
	subset := m.subset()

	var categories []string
	if m.categoryFilter != "" {
		categories = []string{m.categoryFilter}
	}
	var priorities []task.Priority
	if m.priorityFilter != "" {
		priorities = []task.Priority{m.priorityFilter}
	}
	return task.Filter(subset, categories, priorities)
}

// subset returns the unfiltered task set behind the current list view.
// Filter options are derived from it, so only values actually present can
// be selected.
func (m *tuiModel) subset() task.List {
	if m.view == viewCompleted {
		return task.Completed(m.tasks)
	}
	return task.Active(m.tasks)
}

func (m *tuiModel) setPriorityFilter(p task.Priority) {
	if m.priorityFilter == p {
		m.priorityFilter = ""
		m.cursor = 0
		return
	}
	for _, option := range task.PrioritiesPresent(m.subset()) {
		if option == p {
			m.priorityFilter = p
			m.cursor = 0
			return
		}
	}
}

// cycleCategoryFilter steps through the categories present in the current
// subset: none, then each in turn.
func (m *tuiModel) cycleCategoryFilter() {
	options := task.Categories(m.subset())
	if len(options) == 0 {
		m.categoryFilter = ""
		return
	}

	next := 0
	if m.categoryFilter != "" {
		for i, c := range options {
			if c == m.categoryFilter {
				next = i + 1
				break
			}
		}
	}
	if next >= len(options) {
		m.categoryFilter = ""
	} else {
		m.categoryFilter = options[next]
	}
	m.cursor = 0
}

// underCursor returns the task the cursor points at, or nil.
func (m *tuiModel) underCursor() *task.Task {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return &visible[m.cursor]
}

// mutate runs a whole-collection cycle: reload, apply, save, reload.
func (m *tuiModel) mutate(apply func(*task.List) bool) {
	tasks, err := m.store.Load()
	if err != nil {
		m.loadErr = err
		return
	}
	if !apply(&tasks) {
		return
	}
	if err := m.store.Save(tasks); err != nil {
		m.saveErr = err
		return
	}
	m.saveErr = nil
	m.refresh()
}

func (m *tuiModel) toggleUnderCursor() {
	t := m.underCursor()
	if t == nil {
		return
	}
	id, completed := t.ID, t.Completed
	m.mutate(func(l *task.List) bool {
		if completed {
			return l.Uncomplete(id)
		}
		return l.Complete(id)
	})
}

func (m *tuiModel) deleteUnderCursor() {
	t := m.underCursor()
	if t == nil {
		return
	}
	id := t.ID
	m.mutate(func(l *task.List) bool {
		return l.Delete(id)
	})
	m.notice = fmt.Sprintf("Deleted task %d", id)
}

func (m *tuiModel) clearCompleted() {
	var removed int
	m.mutate(func(l *task.List) bool {
		removed = l.ClearCompleted()
		return removed > 0
	})
	if removed > 0 {
		m.notice = fmt.Sprintf("Cleared %d completed task(s)", removed)
	}
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b, m.view)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading task file:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n")
		b.WriteString(noticeStyle.Render("Showing an empty list.") + "\n\n")
	}
	if m.saveErr != nil {
		b.WriteString(errorStyle.Render("Error saving task file:") + "\n")
		b.WriteString("  " + m.saveErr.Error() + "\n\n")
	}

	writeFilters(&b, m.priorityFilter, m.categoryFilter)

	switch m.view {
	case viewStats:
		writeStats(&b, m.tasks)
	default:
		m.writeList(&b)
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	writeFooter(&b)
	return b.String()
}

func (m *tuiModel) writeList(b *strings.Builder) {
	visible := m.visible()
	if len(visible) == 0 {
		if m.view == viewCompleted {
			b.WriteString("  No completed tasks yet.\n\n")
		} else {
			b.WriteString("  No active tasks. You're all caught up!\n\n")
		}
		return
	}

	for i, t := range visible {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + formatTask(t) + "\n")
	}
	b.WriteString("\n")
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeTitle(b *strings.Builder, current view) {
	tabs := []string{"Active", "Completed", "Analytics"}
	parts := make([]string, len(tabs))
	for i, label := range tabs {
		if view(i) == current {
			parts[i] = titleStyle.Render("[" + label + "]")
		} else {
			parts[i] = noticeStyle.Render(" " + label + " ")
		}
	}
	b.WriteString("Taskdeck  " + strings.Join(parts, " ") + "\n\n")
}

func writeFilters(b *strings.Builder, priority task.Priority, category string) {
	if priority == "" && category == "" {
		return
	}
	var parts []string
	if priority != "" {
		parts = append(parts, "priority="+string(priority))
	}
	if category != "" {
		parts = append(parts, "category="+category)
	}
	b.WriteString(noticeStyle.Render("Filter: "+strings.Join(parts, " AND ")+" (0 to clear)") + "\n\n")
}

func writeStats(b *strings.Builder, tasks task.List) {
	if len(tasks) == 0 {
		b.WriteString("  No tasks to analyze yet.\n\n")
		return
	}

	report := stats.Compute(tasks)
	b.WriteString(fmt.Sprintf("  Total: %d  Completed: %d  Remaining: %d  Completion rate: %s\n\n",
		report.Total, report.Completed, report.Remaining, report.FormatRate()))

	writeChart(b, "By Priority", report.PriorityRows(chartWidth), priorityBarStyle)
	writeChart(b, "By Category", report.CategoryRows(chartWidth), nil)
	writeChart(b, "By Status", report.StatusRows(chartWidth), statusBarStyle)
}

func writeChart(b *strings.Builder, title string, rows []stats.HistogramRow, style func(string) lipgloss.Style) {
	if len(rows) == 0 {
		return
	}

	labelWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	b.WriteString("  " + titleStyle.Render(title) + "\n")
	for _, row := range rows {
		bar := row.Bar
		if style != nil {
			bar = style(row.Label).Render(bar)
		}
		b.WriteString(fmt.Sprintf("    %-*s  %s %d\n", labelWidth, row.Label, bar, row.Count))
	}
	b.WriteString("\n")
}

func priorityBarStyle(label string) lipgloss.Style {
	switch task.Priority(label) {
	case task.PriorityHigh:
		return highStyle
	case task.PriorityMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}

func statusBarStyle(label string) lipgloss.Style {
	if label == stats.StatusCompleted {
		return completeStyle
	}
	return activeStyle
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  tab          Switch view (active / completed / analytics)\n")
	b.WriteString("  j/k, arrows  Move cursor\n")
	b.WriteString("  space, x     Toggle completed for the selected task\n")
	b.WriteString("  d            Delete the selected task\n")
	b.WriteString("  C            Clear all completed tasks\n")
	b.WriteString("  1/2/3        Filter by Low/Medium/High priority\n")
	b.WriteString("  c            Cycle category filter\n")
	b.WriteString("  0            Clear filters\n")
	b.WriteString("  r, F5        Refresh\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(noticeStyle.Render("Press h for help | q to quit") + "\n")
}

func formatTask(t task.Task) string {
	mark := "[ ]"
	title := t.Title
	if t.Completed {
		mark = "[x]"
		title = doneStyle.Render(title)
	}

	line := fmt.Sprintf("%s %3d. %s", mark, t.ID, title)

	category := t.Category
	if category == "" {
		category = "Uncategorized"
	}
	meta := fmt.Sprintf("(%s, %s)", category, t.Priority)
	return line + "  " + noticeStyle.Render(meta)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
