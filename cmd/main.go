package main

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/chzyer/readline"

	"pagestudio/local-app/internal/cli"
	"pagestudio/local-app/internal/config"
	"pagestudio/local-app/internal/editor"
	"pagestudio/local-app/internal/event"
	"pagestudio/local-app/internal/log"
	"pagestudio/local-app/internal/storage"
	"pagestudio/local-app/internal/ui"
)

func main() {
	fmt.Println("Welcome to Page Studio! Use 'help' for the list of commands.")

	// Load configuration
	if err := config.ConfigLoad(); err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.ConfigGet()

	// Initialize loggers
	logger, err := log.NewLogger(cfg.LogFolder, cfg.CommandLog, cfg.ErrorLog)
	if err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	// Initialize project storage
	store, err := storage.NewSQLiteStore(cfg.DatabaseDir, cfg.DatabaseFile)
	if err != nil {
		stdlog.Fatalf("Failed to initialize storage: %v", err)
	}
	defer func() {
		fmt.Println("Closing database connection...")
		if err := store.Close(); err != nil {
			stdlog.Printf("Error closing database: %v", err)
		}
		fmt.Println("Goodbye!")
	}()

	if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
		stdlog.Printf("Failed to create export directory: %v", err)
	}

	// Initialize editor session
	events := event.NewEventManager()
	ed := editor.New(events)

	u := ui.NewUI(os.Stdout, cfg.UseColor)
	events.Subscribe(event.ProjectReplaced, func(event.Event) {
		u.ShowHierarchy(ed.Project(), ed.Selected(), ed.Collapsed())
	})

	// Initialize readline with history file from config
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		stdlog.Fatalf("Failed to initialize readline: %v", err)
	}
	defer rl.Close()

	c := cli.NewCLI(ed, store, u, rl, logger)

	// Main loop
	for {
		err := c.Run()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Println("Use 'exit' or 'quit' to exit the program.")
				continue
			} else if errors.Is(err, io.EOF) {
				break
			}
			if logErr := logger.LogError(err); logErr != nil {
				stdlog.Printf("Failed to log error: %v", logErr)
			}
			u.Error(err.Error())
		}
	}
}
