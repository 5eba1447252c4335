package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameConfigPreset(t *testing.T) {
	defer func() { flagConfig, flagDifficulty = "", "" }()

	tests := []struct {
		difficulty string
		wantPreset string
		wantErr    bool
	}{
		{"", "normal", false},
		{"easy", "easy", false},
		{"hard", "hard", false},
		{"fixed", "fixed", false},
		{"brutal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			flagDifficulty = tt.difficulty
			cfg, preset, err := loadGameConfig()
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadGameConfig() failed: %v", err)
			}
			if preset != tt.wantPreset {
				t.Errorf("preset = %q, expected %q", preset, tt.wantPreset)
			}
			if tt.difficulty == "fixed" && cfg.Difficulty.Enabled {
				t.Error("fixed should disable the speed ramp")
			}
		})
	}
}

func TestLoadGameConfigCustomFile(t *testing.T) {
	defer func() { flagConfig = "" }()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, _, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Player.Lives)
	}

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, _, err := loadGameConfig(); err == nil {
		t.Error("a missing custom config should fail")
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "skyfaller.log")
	logger, closer := newFileLogger(path)
	logger.Info("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, expected %q", addr, got, want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/abs"); got != "/abs" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
