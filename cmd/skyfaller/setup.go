package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/storage"
)

// loadGameConfig resolves the game config and applies the difficulty flag.
// Returns the preset name recorded with saved runs.
func loadGameConfig() (config.SkyfallerConfig, string, error) {
	cfg, err := config.LoadSkyfaller(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	if preset == "" {
		return cfg, string(config.DifficultyNormal), nil
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, string(preset), nil
}

// mustLoadGameConfig is loadGameConfig for command handlers.
func mustLoadGameConfig() (config.SkyfallerConfig, string) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg, preset
}

// newFileLogger opens the log file. The returned closer must be called on exit.
// An empty path or an unwritable file gives a discarding logger.
func newFileLogger(path string) (*log.Logger, io.Closer) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfaller",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f
}

// openStore opens the scores database. Play continues without history on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Runs will not be saved.")
		return nil
	}
	return store
}

// playerName is the name runs are saved under.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
