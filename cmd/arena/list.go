package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-dash/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the plain arena and one variant per built-in layout.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Objects", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-------", "-----")
	for _, g := range games {
		objects := "-"
		if g.Layout != "" {
			objects = strconv.Itoa(g.Objects)
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, g.ID, objects, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arena play <id>' to play a game.")
}
