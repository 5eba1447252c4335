package config

import "math"

// SpeedRamp computes obstacle speed from the time survived.
// Speed grows linearly: base + elapsed*acceleration, optionally capped.
type SpeedRamp struct {
	cfg DifficultyConfig
}

// NewSpeedRamp creates a ramp from the difficulty settings.
func NewSpeedRamp(cfg DifficultyConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether the speed grows over time.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Acceleration != 0
}

// Speed returns the obstacle speed (units per frame) after elapsed seconds.
// It never decreases as elapsed grows.
func (r *SpeedRamp) Speed(elapsed float64) float64 {
	speed := r.cfg.BaseSpeed
	if r.IsEnabled() && elapsed > 0 {
		speed += elapsed * math.Max(r.cfg.Acceleration, 0)
	}
	if r.cfg.MaxSpeed > 0 && speed > r.cfg.MaxSpeed {
		speed = r.cfg.MaxSpeed
	}
	return speed
}
