package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-dash/internal/config"
	"github.com/vovakirdan/arena-dash/internal/scenario"
)

var runCmd = &cobra.Command{
	Use:   "run <script>...",
	Short: "Run scenario scripts headless",
	Long: `Plays scenario scripts against the simulation without a terminal UI
and checks each one against its expectations.

Exits with an error if any script fails.

Examples:
  arena run ./scenarios/collect.yaml
  arena run --config ./fast.yaml ./scenarios/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := scenario.NewRunner(cfg, logger)
	failed := 0
	for _, path := range args {
		if err := runScript(ctx, runner, path); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(args))
	}
	return nil
}

func runScript(ctx context.Context, runner *scenario.Runner, path string) error {
	script, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx, script)
	if err != nil {
		return err
	}
	if err := res.Check(script.Expect); err != nil {
		return err
	}

	final := res.Final
	fmt.Printf("ok    %s: %s at %.2fs, score %d, lives %d\n",
		script.Name, final.Phase, final.Now, final.Player.Score, final.Player.Lives)
	return nil
}
