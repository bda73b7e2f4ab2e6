package main

import (
	"flag"
	"fmt"
	"os"

	"ieltsim/cmd/adminui/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	host := flag.String("host", "127.0.0.1", "API server host")
	port := flag.Int("port", 5000, "API server port")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*host, *port), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
