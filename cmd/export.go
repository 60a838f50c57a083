package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/taskdeck/internal/config"
	"github.com/nibzard/taskdeck/internal/store"
)

// exportCommand writes the current collection as a JSON document with the
// same shape as the backing file.
func exportCommand(st store.Store, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskdeck export", flag.ContinueOnError)
	out := fs.String("o", cfg.ExportFile, "Output path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks := loadTasks(st, logger)
	data, err := store.Marshal(tasks)
	if err != nil {
		return err
	}

	if *out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	fmt.Printf("Exported %d task(s) to %s\n", len(tasks), *out)
	return nil
}
