package config

import (
	_ "embed"
)

//go:embed defaults/skyfaller.yaml
var defaultSkyfallerYAML []byte

// DefaultSkyfallerConfig returns the built-in configuration.
// It matches defaults/skyfaller.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultSkyfallerConfig() SkyfallerConfig {
	return SkyfallerConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Skyfaller",
		},
		Bounds: BoundsConfig{
			Left:   -12.0,
			Right:  12.0,
			Top:    10.0,
			Bottom: -10.0,
		},
		Field: FieldConfig{
			Min: -20.0,
			Max: 20.0,
		},
		Player: PlayerConfig{
			Size:      1.0,
			FallSpeed: 0.04,
			Lives:     3,
			MoveStep:  0.1,
		},
		Obstacles: ObstacleConfig{
			Size:          2.0,
			SizeJitter:    0,
			Max:           30,
			Distance:      100,
			RecycleMargin: 20,
		},
		Spawn: SpawnConfig{
			InitialInterval: 1.0,
			IntervalMin:     0.5,
			IntervalMax:     1.5,
		},
		Camera: CameraConfig{
			Offset:    3,
			EyeHeight: 10,
		},
		Score: ScoreConfig{
			Rate: 5,
		},
		Feedback: FeedbackConfig{
			ShakeAmplitude: 0.5,
			ShakeDuration:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			BaseSpeed:    0.005,
			Acceleration: 0.0001,
			MaxSpeed:     0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSkyfallerYAML
}
