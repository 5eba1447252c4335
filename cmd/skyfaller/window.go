package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
	"github.com/vovakirdan/skyfaller/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a run.

Controls:
  Left/A     - Steer left
  Right/D    - Steer right
  P          - Pause
  R          - Restart (after game over)
  Q/Esc      - Quit

The window size comes from the game config (window.width, window.height)
unless overridden with --width and --height.

Examples:
  skyfaller window
  skyfaller window --width 1280 --height 720
  skyfaller window --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (0 = from config)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (0 = from config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, preset := mustLoadGameConfig()
	if flagWidth > 0 {
		gameCfg.Window.Width = flagWidth
	}
	if flagHeight > 0 {
		gameCfg.Window.Height = flagHeight
	}

	logger, closer := newFileLogger(flagLogFile)
	defer closer.Close()

	game := skyfaller.New(gameCfg)
	game.SetLogger(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	runtime := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	opts := window.Options{
		Player:     playerName(),
		Difficulty: preset,
		Logger:     logger,
	}

	logger.Info("opening window", "difficulty", preset, "width", gameCfg.Window.Width, "height", gameCfg.Window.Height)
	if err := window.Run(game, store, gameCfg.Window, runtime, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
