package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arena-dash/internal/platform/tui"
	"github.com/vovakirdan/arena-dash/internal/registry"
	"github.com/vovakirdan/arena-dash/internal/storage"
)

var (
	flagScoresTable bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and round stats",
	Long: `Display the high scores and recent rounds for a game (default: arena).

With --table the interactive scoreboard opens instead.

Examples:
  arena scores
  arena scores arena_gauntlet --limit 20
  arena scores --table`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and rounds to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "arena"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arena list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, gameID, width, height)
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	if stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("Rounds: %d  Won: %d  Lost: %d  Win rate: %.0f%%  Avg score: %.1f\n",
			stats.Rounds, stats.Wins, stats.Losses, stats.WinRate()*100, stats.AvgScore)
	}

	rounds, err := store.RecentRounds(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(rounds) > 0 {
		fmt.Println()
		fmt.Println("Recent rounds:")
		for _, r := range rounds {
			fmt.Printf("  %-4s  score %-4d  lives %d  %2ds left  %2d objects  %s  %s\n",
				strings.ToUpper(r.Outcome), r.Score, r.Lives, r.TimeLeft, r.Objects,
				r.CreatedAt.Format("2006-01-02 15:04"), shortID(r.RoundID))
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
