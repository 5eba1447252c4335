package skyfaller

import (
	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/core"
)

// Steering is the per-frame input the session needs.
// core.InputFrame satisfies it.
type Steering interface {
	LeftPressed() bool
	RightPressed() bool
}

// Player is the falling cube.
type Player struct {
	Position  core.Vec3
	Size      float64 // Half-extent
	FallSpeed float64 // Units per frame
	Lives     int
}

// NewPlayer creates a player at the origin.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Size:      cfg.Size,
		FallSpeed: cfg.FallSpeed,
		Lives:     cfg.Lives,
	}
}

// Steer moves the player along X by step for each pressed direction.
func (p *Player) Steer(in Steering, step float64) {
	if in == nil {
		return
	}
	if in.LeftPressed() {
		p.Position.X -= step
	}
	if in.RightPressed() {
		p.Position.X += step
	}
}

// Fall moves the player down by one frame's worth of fall speed.
func (p *Player) Fall() {
	p.Position.Y -= p.FallSpeed
}

// Clamp keeps the player inside the steering bounds.
func (p *Player) Clamp(x, z core.Bounds) {
	p.Position.X = x.Clamp(p.Position.X)
	p.Position.Z = z.Clamp(p.Position.Z)
}

// Hit takes one life, never going below zero.
// Returns true when no lives are left.
func (p *Player) Hit() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives == 0
}
