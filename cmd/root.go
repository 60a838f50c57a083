// Package cmd implements the CLI command structure for taskdeck.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/nibzard/taskdeck/internal/config"
	"github.com/nibzard/taskdeck/internal/store"
	"github.com/nibzard/taskdeck/internal/task"
	"github.com/nibzard/taskdeck/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskdeck CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	color.NoColor = color.NoColor || cfg.NoColor
	logger := newLogger(cfg)

	// Determine the subcommand; bare "taskdeck" lists active tasks.
	subcommand := "ls"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	st := store.NewFileStore(cfg.DataFile)

	switch subcommand {
	case "add":
		return addCommand(st, logger, remainingArgs)
	case "ls", "list":
		return lsCommand(st, logger, remainingArgs)
	case "done":
		return doneCommand(st, logger, remainingArgs)
	case "undo":
		return undoCommand(st, logger, remainingArgs)
	case "edit":
		return editCommand(st, logger, remainingArgs)
	case "rm":
		return rmCommand(st, logger, remainingArgs)
	case "clear":
		return clearCommand(st, logger, remainingArgs)
	case "stats":
		return statsCommand(st, logger, remainingArgs)
	case "export":
		return exportCommand(st, cfg, logger, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newLogger builds the console logger used for warnings and errors.
func newLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLogLevel(cfg.LogLevel),
		ReportTimestamp: false,
		Prefix:          "taskdeck",
	})
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// loadTasks reads the full collection. Malformed content is reported as a
// warning and an empty collection is returned; the command keeps running.
func loadTasks(st store.Store, logger *log.Logger) task.List {
	tasks, err := st.Load()
	if err != nil {
		logger.Warn("starting with an empty task list", "file", st.Path(), "err", err)
	}
	return tasks
}

// tuiCommand launches the terminal UI.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskdeck tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return ui.RunTUI(ctx, cfg)
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("taskdeck version %s\n", Version)
	return nil
}

// parseID parses a task id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// splitAndTrim splits a string by sep and trims whitespace from each part.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parsePriorities parses a comma-separated priority filter list.
func parsePriorities(s string) ([]task.Priority, error) {
	var out []task.Priority
	for _, part := range splitAndTrim(s, ",") {
		if !task.IsValidPriority(part) {
			return nil, fmt.Errorf("invalid priority %q (expected Low|Medium|High)", part)
		}
		out = append(out, task.NormalizePriority(part))
	}
	return out, nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskdeck - A single-user task tracker over a flat JSON file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskdeck [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <title...>   Add a new task")
	fmt.Fprintln(w, "  ls               List tasks (default command; active tasks unless told otherwise)")
	fmt.Fprintln(w, "  done <id>        Mark a task completed")
	fmt.Fprintln(w, "  undo <id>        Mark a task not completed")
	fmt.Fprintln(w, "  edit <id>        Edit a task's title, category, or priority")
	fmt.Fprintln(w, "  rm <id>          Delete a task")
	fmt.Fprintln(w, "  clear            Delete all completed tasks")
	fmt.Fprintln(w, "  stats            Show analytics for the whole collection")
	fmt.Fprintln(w, "  export           Write the collection as a JSON document")
	fmt.Fprintln(w, "  doctor           Check the task file and configuration")
	fmt.Fprintln(w, "  tui              Launch terminal UI")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options (use with 'add' command):")
	fmt.Fprintln(w, "  -priority string")
	fmt.Fprintln(w, "        Priority: Low, Medium, or High (default Low)")
	fmt.Fprintln(w, "  -category string")
	fmt.Fprintln(w, "        Free-form category, e.g. Work or Home")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options (use with 'ls' command):")
	fmt.Fprintln(w, "  -completed")
	fmt.Fprintln(w, "        Show completed tasks instead of active ones")
	fmt.Fprintln(w, "  -all")
	fmt.Fprintln(w, "        Show all tasks")
	fmt.Fprintln(w, "  -category string")
	fmt.Fprintln(w, "        Comma-separated category filter")
	fmt.Fprintln(w, "  -priority string")
	fmt.Fprintln(w, "        Comma-separated priority filter")
	fmt.Fprintln(w, "  -v    Show categories and priorities of each task")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export Options (use with 'export' command):")
	fmt.Fprintln(w, "  -o string")
	fmt.Fprintln(w, "        Output path (default from config, todos_backup.json)")
}
