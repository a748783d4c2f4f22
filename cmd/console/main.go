package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/oregontales/roadtrip/pkg/engine"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    30 * time.Second,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\nTry: docker-compose up -d\n")
		os.Exit(1)
	}

	// GAME_ID resumes an existing save; otherwise a new session starts.
	var snap *engine.Snapshot
	var err error
	if idStr := os.Getenv("GAME_ID"); idStr != "" {
		id, parseErr := uuid.Parse(idStr)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Invalid GAME_ID: %v\n", parseErr)
			os.Exit(1)
		}
		snap, err = getGame(client, cfg.APIBaseURL, id)
	} else {
		snap, err = createGame(client, cfg.APIBaseURL)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(cfg, client, snap), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
