package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/core"
	"github.com/vovakirdan/arena-dash/internal/games/arena"
	"github.com/vovakirdan/arena-dash/internal/layout"
	"github.com/vovakirdan/arena-dash/internal/platform/tui"
	"github.com/vovakirdan/arena-dash/internal/registry"
	"github.com/vovakirdan/arena-dash/internal/storage"
)

var flagLayout string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: arena).

Edit phase:
  1-4          - Pick obstacle, collectible, speed or shield
  WASD/Arrows  - Move the cursor
  Enter/Space  - Place the picked object (mouse click works too)
  R            - Start the round

Play phase:
  WASD/Arrows  - Steer the ship
  P            - Pause
  R            - Restart the round
  B/Esc        - Leave to the scoreboard
  Q/Ctrl+C     - Quit

Examples:
  arena play
  arena play arena_garden
  arena play --layout ./my-layout.yaml
  arena play --config ./fast.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Layout YAML applied to the plain arena")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "arena"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arena list' to see available games", gameID)
	}

	// Fail early on a broken config instead of silently playing defaults
	if _, err := config.Load(flagConfig); err != nil {
		return err
	}
	arena.SetConfigPath(flagConfig)

	if flagLayout != "" {
		if gameID != "arena" {
			return fmt.Errorf("--layout only applies to the plain arena, not %q", gameID)
		}
		if _, err := layout.NewLoader("").LoadFile(flagLayout); err != nil {
			return err
		}
		arena.SetLayoutFile(flagLayout)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "width", width, "height", height, "fps", flagFPS)
	back, err := tui.Run(game, store, cfg, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if back && store != nil {
		if _, err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
	}
	return nil
}
