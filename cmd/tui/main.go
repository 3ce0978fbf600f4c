package main

import (
	"fmt"
	"os"

	"github.com/Varun5711/taskhub/cmd/tui/client"
	"github.com/Varun5711/taskhub/cmd/tui/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	baseURL := os.Getenv("TASKHUB_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	apiClient := client.New(baseURL)

	p := tea.NewProgram(
		ui.NewModel(apiClient),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
