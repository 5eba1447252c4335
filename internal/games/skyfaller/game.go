// Package skyfaller implements a falling-cube arcade game.
// The player drops through an endless field of obstacle cubes and steers
// left and right to avoid them; each hit costs a life.
package skyfaller

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/core"
)

// Game drives one Skyfaller session per Reset.
type Game struct {
	cfg     config.SkyfallerConfig
	runtime core.RuntimeConfig
	session *Session
	shake   *Shake
	logger  *log.Logger

	clock     core.Clock      // Clock of the running session
	stepClock *core.StepClock // Set when the game advances its own clock each Step
	external  core.Clock      // Clock requested by SetClock, applied on Reset

	paused   bool
	pausedAt float64
	lastNow  float64
}

// New creates a game using cfg for every session it starts.
// It is ready to Step with the default runtime config.
func New(cfg config.SkyfallerConfig) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyfaller"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyfaller"
}

// SetLogger sets where gameplay events are logged. nil discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetClock makes the game read time from c instead of advancing its own
// step clock. Pass nil to go back to the step clock. Takes effect on the
// next Reset.
func (g *Game) SetClock(c core.Clock) {
	g.external = c
}

// Reset starts a fresh session. The previous one is discarded.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.external != nil {
		g.clock = g.external
		g.stepClock = nil
	} else {
		g.stepClock = core.NewStepClock(runtime.TickRate)
		g.clock = g.stepClock
	}
	now := g.clock.Now()

	g.session = NewSession(g.cfg, runtime.Seed, now)
	g.shake = NewShake(g.cfg.Feedback.ShakeAmplitude, g.cfg.Feedback.ShakeDuration, runtime.Seed+1)
	g.paused = false
	g.pausedAt = 0
	g.lastNow = now

	g.logger.Debug("session started", "seed", runtime.Seed, "lives", g.session.Lives())
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.stepClock != nil {
		g.stepClock.Advance()
	}
	now := g.clock.Now()
	dt := now - g.lastNow
	g.lastNow = now

	if g.session.Phase() == PhaseGameOver {
		g.shake.Update(dt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause(now)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	out := g.session.Update(now, in)
	if out.Collided {
		g.shake.Start()
		g.logger.Info("obstacle hit", "obstacle", out.Removed, "lives", out.Lives)
		if out.Phase == PhaseGameOver {
			g.logger.Warn("game over",
				"score", out.Score,
				"elapsed", g.session.Elapsed(),
				"hits", g.session.Hits(),
			)
		}
	} else {
		g.shake.Update(dt)
	}

	return core.StepResult{State: g.State(), Collided: out.Collided}
}

func (g *Game) togglePause(now float64) {
	if g.paused {
		g.session.Skip(now - g.pausedAt)
		g.paused = false
		return
	}
	g.paused = true
	g.pausedAt = now
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the game settings.
func (g *Game) Config() config.SkyfallerConfig {
	return g.cfg
}

// Runtime returns the runtime config of the last Reset.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}
