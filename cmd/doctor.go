package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/taskdeck/internal/config"
	"github.com/nibzard/taskdeck/internal/store"
)

// doctorCommand checks the configuration and the task file.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskdeck doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fmt.Println("Taskdeck Doctor")
	fmt.Println("===============")
	fmt.Println()

	allOK := true

	// Check working directory
	fmt.Printf("Working directory: %s\n", cfg.WorkDir)
	if _, err := os.Stat(cfg.WorkDir); err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	// Check task file
	fmt.Printf("Task file: %s\n", cfg.DataFile)
	info, err := os.Stat(cfg.DataFile)
	switch {
	case os.IsNotExist(err):
		fmt.Println("  ⚠️  Not found (will be created on first use)")
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Println("  ✅ OK")
		if !checkTaskFile(cfg.DataFile, *verbose) {
			allOK = false
		}
	}
	fmt.Println()

	// Check export destination
	fmt.Printf("Export file: %s\n", cfg.ExportFile)
	exportDir := filepath.Dir(cfg.ExportFile)
	if dirInfo, err := os.Stat(exportDir); err != nil {
		fmt.Printf("  ❌ Directory error: %v\n", err)
		allOK = false
	} else if !dirInfo.IsDir() {
		fmt.Println("  ❌ Error: parent is not a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Taskdeck may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}

// checkTaskFile validates the task file content against the embedded
// schema and reports problems.
func checkTaskFile(path string, verbose bool) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  ❌ Read error: %v\n", err)
		return false
	}

	result := store.Validate(data)
	for _, w := range result.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
	if !result.Valid {
		fmt.Println("  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Printf("     - %v\n", e)
		}
		return false
	}
	fmt.Println("  ✅ Valid")

	if verbose {
		st := store.NewFileStore(path)
		tasks, err := st.Load()
		if err == nil {
			fmt.Printf("  Tasks: %d\n", len(tasks))
			for _, t := range tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Printf("    - [%s] %d: %s\n", mark, t.ID, t.Title)
			}
		}
	}
	return true
}
