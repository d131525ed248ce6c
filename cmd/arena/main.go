// arena is a terminal arcade where you build an arena and then race a
// moving target through it before the clock runs out.
//
// Usage:
//
//	arena list               - List available games
//	arena play [game]        - Play a game (default: arena)
//	arena serve              - Start SSH server for remote play
//	arena scores [game]      - Show high scores and round stats
//	arena layouts [dir]      - List layouts
//	arena run <script>...    - Run scenario scripts headless
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set database path (default: ~/.arena/scores.db)
//	--config <path>    - Use a custom arena config YAML
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arena-dash/internal/games/arena"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Arena Dash - build an arena, then race through it",
	Long: `Arena Dash is a terminal arcade game in two phases.

In the edit phase you place obstacles, collectibles and power-ups.
Press R and the round starts: steer your ship to the moving target
before the countdown ends, without losing all your lives on obstacles.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  serve    - Start SSH server for remote play
  scores   - View high scores and round stats
  layouts  - List built-in or custom layouts
  run      - Run scenario scripts headless

Examples:
  arena play
  arena play arena_gauntlet
  arena play --layout ./my-layout.yaml
  arena serve --ssh :2222
  arena run ./scenarios/*.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(runCmd)
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback, which is io.Discard while a TUI owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
		Level:           level,
	})
	return logger, closer, nil
}
