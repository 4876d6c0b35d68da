package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"taskpad/client"
	"taskpad/tui"
)

func main() {
	baseURL := os.Getenv("TASKPAD_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Diagnostics must not write to the terminal bubbletea is drawing on.
	logger := log.New()
	logger.SetOutput(io.Discard)
	if path := os.Getenv("TASKPAD_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	app := tui.New(client.New(baseURL), logger)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskpad: %v\n", err)
		os.Exit(1)
	}
}
