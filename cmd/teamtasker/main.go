package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"teamtasker/internal/auth"
	"teamtasker/internal/config"
	"teamtasker/internal/log"
	"teamtasker/internal/reminder"
	"teamtasker/internal/store"
	"teamtasker/internal/update"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFileName, "path to the config file")
	flag.Parse()

	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teamtasker: load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file.
	if cfg.LogPath != "" {
		logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "teamtasker: open log: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	st := store.New()
	engine := reminder.NewEngine(st, reminder.WithInterval(cfg.ReminderInterval()))
	engine.Start()
	defer engine.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModel(cfg, auth.NewService(cfg.Username, cfg.PasswordHash), st, engine, notifier)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "teamtasker failed: %v\n", err)
		os.Exit(1)
	}
}
