package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-dash/internal/layout"
	"github.com/vovakirdan/arena-dash/internal/sim"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [dir]",
	Short: "List layouts",
	Long: `Lists the built-in layouts, or every layout file found under dir.

Files that fail to parse are skipped.

Examples:
  arena layouts
  arena layouts ./my-layouts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) error {
	var (
		layouts []layout.Layout
		err     error
	)
	if len(args) == 1 {
		layouts, err = layout.NewLoader(args[0]).LoadAll()
	} else {
		layouts, err = layout.Builtin()
	}
	if err != nil {
		return err
	}

	if len(layouts) == 0 {
		fmt.Println("No layouts found.")
		return nil
	}

	for _, l := range layouts {
		counts := l.Counts()
		fmt.Printf("%-12s %s\n", l.ID, l.Name)
		if l.Description != "" {
			fmt.Printf("             %s\n", l.Description)
		}
		fmt.Printf("             %d obstacles, %d collectibles, %d speed, %d shield\n",
			counts[sim.KindObstacle], counts[sim.KindCollectible], counts[sim.KindSpeed], counts[sim.KindShield])
		if l.FilePath != "" {
			fmt.Printf("             %s\n", l.FilePath)
		}
	}
	return nil
}
