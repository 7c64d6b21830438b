package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"articlesearch/demo/tui"
)

func main() {
	_ = godotenv.Load()

	program := tea.NewProgram(tui.NewModel())
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
