package skyfaller

import (
	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/core"
)

// Outcome describes what one Update did.
type Outcome struct {
	Collided bool
	Removed  int // Index of the obstacle removed by the collision, -1 if none
	Spawned  bool
	Recycled int
	Speed    float64 // Obstacle speed used this frame
	Lives    int
	Score    int
	Phase    Phase
}

// Session is one run from the first frame until game over.
// It owns all mutable game state; nothing here is shared.
type Session struct {
	player  Player
	pool    *Pool
	ramp    *config.SpeedRamp
	cfg     config.SkyfallerConfig
	seed    int64
	phase   Phase
	start   float64 // Clock reading when the session began, shifted by pauses
	elapsed float64
	score   int
	hits    int
}

// NewSession starts a session at clock reading now.
// A config without lives starts the session already over.
func NewSession(cfg config.SkyfallerConfig, seed int64, now float64) *Session {
	s := &Session{
		player: NewPlayer(cfg.Player),
		pool:   NewPool(seed, &cfg, now),
		ramp:   config.NewSpeedRamp(cfg.Difficulty),
		cfg:    cfg,
		seed:   seed,
		phase:  PhaseRunning,
		start:  now,
	}
	if s.player.Lives <= 0 {
		s.player.Lives = 0
		s.phase = PhaseGameOver
	}
	return s
}

// Update advances the session by one frame.
// Once the phase is GameOver it changes nothing.
func (s *Session) Update(now float64, in Steering) Outcome {
	if s.phase == PhaseGameOver {
		return s.outcome()
	}

	s.player.Steer(in, s.cfg.Player.MoveStep)
	s.player.Fall()
	s.player.Clamp(s.cfg.Bounds.X(), s.cfg.Bounds.Z())

	if now-s.start > s.elapsed {
		s.elapsed = now - s.start
	}
	cameraY := s.CameraY()

	out := Outcome{Removed: -1}
	out.Speed = s.ramp.Speed(s.elapsed)
	out.Recycled = s.pool.Move(out.Speed, cameraY)
	out.Spawned = s.pool.Spawn(now, cameraY)

	if i := s.pool.FirstHit(s.player.Position, s.player.Size); i >= 0 {
		s.pool.RemoveAt(i)
		s.hits++
		out.Collided = true
		out.Removed = i
		if s.player.Hit() {
			s.phase = PhaseGameOver
		}
	}

	if score := ScoreAt(s.elapsed, s.cfg.Score.Rate); score > s.score {
		s.score = score
	}

	out.Lives = s.player.Lives
	out.Score = s.score
	out.Phase = s.phase
	return out
}

// Skip removes d seconds from the session's timeline, e.g. a pause.
// Elapsed time and the spawn timer both ignore the skipped span.
func (s *Session) Skip(d float64) {
	if d <= 0 {
		return
	}
	s.start += d
	s.pool.delay(d)
}

func (s *Session) outcome() Outcome {
	return Outcome{
		Removed: -1,
		Lives:   s.player.Lives,
		Score:   s.score,
		Phase:   s.phase,
	}
}

// CameraY is the line obstacles are spawned below and recycled above.
func (s *Session) CameraY() float64 {
	return s.player.Position.Y - s.cfg.Camera.Offset
}

// Eye is the viewpoint used for drawing, above the player looking down.
func (s *Session) Eye() core.Vec3 {
	return core.V3(0, s.player.Position.Y+s.cfg.Camera.EyeHeight, 0)
}

// Player returns a copy of the player state.
func (s *Session) Player() Player { return s.player }

// Pool returns the obstacle pool.
func (s *Session) Pool() *Pool { return s.pool }

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Score() int { return s.score }
func (s *Session) Lives() int { return s.player.Lives }
func (s *Session) Hits() int { return s.hits }
func (s *Session) Elapsed() float64 { return s.elapsed }
func (s *Session) Seed() int64 { return s.seed }

// Config returns the settings the session was started with.
func (s *Session) Config() config.SkyfallerConfig { return s.cfg }
