// Package config provides YAML-based game configuration loading and
// difficulty management for Skyfaller.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/skyfaller/internal/core"
)

// SkyfallerConfig contains all configuration for one game session.
// It is read once at session start.
type SkyfallerConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Bounds     BoundsConfig     `yaml:"bounds"`
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Camera     CameraConfig     `yaml:"camera"`
	Score      ScoreConfig      `yaml:"score"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BoundsConfig limits where the player can steer.
// Left/Right bound X, Bottom/Top bound Z.
type BoundsConfig struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// X returns the horizontal steering range.
func (b BoundsConfig) X() core.Bounds {
	return core.Bounds{Min: b.Left, Max: b.Right}
}

// Z returns the depth steering range.
func (b BoundsConfig) Z() core.Bounds {
	return core.Bounds{Min: b.Bottom, Max: b.Top}
}

// FieldConfig is the square (on X and Z) where obstacles appear.
type FieldConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Range returns the field as bounds usable on either axis.
func (f FieldConfig) Range() core.Bounds {
	return core.Bounds{Min: f.Min, Max: f.Max}
}

// PlayerConfig defines the falling cube.
type PlayerConfig struct {
	Size      float64 `yaml:"size"`       // Half-extent
	FallSpeed float64 `yaml:"fall_speed"` // Units per frame
	Lives     int     `yaml:"lives"`
	MoveStep  float64 `yaml:"move_step"` // X displacement per frame while steering
}

// ObstacleConfig defines the obstacle pool.
type ObstacleConfig struct {
	Size          float64 `yaml:"size"`           // Half-extent
	SizeJitter    float64 `yaml:"size_jitter"`    // Per-obstacle size variation (+/-)
	Max           int     `yaml:"max"`            // Pool capacity
	Distance      float64 `yaml:"distance"`       // How far below the camera obstacles appear
	RecycleMargin float64 `yaml:"recycle_margin"` // How far above the camera obstacles are recycled
}

// SpawnConfig defines the spawn timer.
type SpawnConfig struct {
	InitialInterval float64 `yaml:"initial_interval"`
	IntervalMin     float64 `yaml:"interval_min"`
	IntervalMax     float64 `yaml:"interval_max"`
}

// CameraConfig places the camera relative to the player.
type CameraConfig struct {
	Offset    float64 `yaml:"offset"`     // Camera line used for spawning/recycling, below the player
	EyeHeight float64 `yaml:"eye_height"` // Viewpoint used for drawing, above the player
}

// ScoreConfig defines scoring.
type ScoreConfig struct {
	Rate float64 `yaml:"rate"` // Points per second survived
}

// FeedbackConfig defines the hit shake.
type FeedbackConfig struct {
	ShakeAmplitude float64 `yaml:"shake_amplitude"`
	ShakeDuration  float64 `yaml:"shake_duration"` // Seconds
}

// DifficultyConfig defines how obstacle speed ramps with elapsed time.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	BaseSpeed    float64 `yaml:"base_speed"`   // Units per frame at t=0
	Acceleration float64 `yaml:"acceleration"` // Added per second survived
	MaxSpeed     float64 `yaml:"max_speed"`    // 0 = uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "keep config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Validate reports every problem with the config at once.
func (c SkyfallerConfig) Validate() error {
	var errs []error

	if c.Bounds.Left > c.Bounds.Right {
		errs = append(errs, fmt.Errorf("bounds: left %.2f > right %.2f", c.Bounds.Left, c.Bounds.Right))
	}
	if c.Bounds.Bottom > c.Bounds.Top {
		errs = append(errs, fmt.Errorf("bounds: bottom %.2f > top %.2f", c.Bounds.Bottom, c.Bounds.Top))
	}
	if c.Field.Min > c.Field.Max {
		errs = append(errs, fmt.Errorf("field: min %.2f > max %.2f", c.Field.Min, c.Field.Max))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, errors.New("player: size must be positive"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player: lives must be positive"))
	}
	if c.Obstacles.Size <= 0 {
		errs = append(errs, errors.New("obstacles: size must be positive"))
	}
	if c.Obstacles.SizeJitter < 0 || c.Obstacles.SizeJitter >= c.Obstacles.Size {
		errs = append(errs, errors.New("obstacles: size_jitter must be in [0, size)"))
	}
	if c.Obstacles.Max <= 0 {
		errs = append(errs, errors.New("obstacles: max must be positive"))
	}
	if c.Spawn.IntervalMin < 0 || c.Spawn.IntervalMin > c.Spawn.IntervalMax {
		errs = append(errs, fmt.Errorf("spawn: interval range [%.2f, %.2f] is invalid", c.Spawn.IntervalMin, c.Spawn.IntervalMax))
	}
	if c.Score.Rate <= 0 {
		errs = append(errs, errors.New("score: rate must be positive"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid skyfaller config: %w", errors.Join(errs...))
}
