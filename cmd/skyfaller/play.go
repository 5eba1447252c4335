package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
	"github.com/vovakirdan/skyfaller/internal/platform/tui"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the current terminal.

Controls:
  Left/A/H   - Steer left
  Right/D/L  - Steer right
  P/Esc      - Pause
  R          - Restart (after game over)
  B/Tab      - High scores (when paused or after game over)
  Ctrl+S     - Save a screenshot to ~/.skyfaller/screenshots
  Q/Ctrl+C   - Quit

Terminals report key presses, not releases, so a steering key counts as
held for a few ticks after each press. Tune it with --hold.

Difficulty options:
  easy   - Slower ramp, five lives
  normal - Config as written
  hard   - Twice as fast, two lives
  fixed  - No speed ramp

Examples:
  skyfaller play
  skyfaller play --difficulty easy
  skyfaller play --seed 42 --fps 30
  skyfaller play --config ./my-skyfaller.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a steering key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, preset := mustLoadGameConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger, closer := newFileLogger(flagLogFile)
	defer closer.Close()

	game := skyfaller.New(gameCfg)
	game.SetLogger(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Player:     playerName(),
		Difficulty: preset,
		HoldTicks:  flagHoldTicks,
		Logger:     logger,
	}

	logger.Info("starting terminal session", "difficulty", preset, "seed", flagSeed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, store, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
