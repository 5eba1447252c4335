package skyfaller

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/skyfaller/internal/core"
)

// Shake is the short jitter drawn on the player after a hit.
// It only affects drawing.
type Shake struct {
	tween     *gween.Tween
	amplitude float64
	active    bool
	rng       *rand.Rand
}

// NewShake creates an idle shake that decays from amplitude to 0 over
// duration seconds.
func NewShake(amplitude, duration float64, seed int64) *Shake {
	return &Shake{
		tween: gween.New(float32(amplitude), 0, float32(duration), ease.OutQuad),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Start restarts the shake at full amplitude.
func (s *Shake) Start() {
	s.tween.Reset()
	amp, _ := s.tween.Set(0)
	s.amplitude = float64(amp)
	s.active = s.amplitude > 0
}

// Update advances the shake by dt seconds.
func (s *Shake) Update(dt float64) {
	if !s.active {
		return
	}
	amp, done := s.tween.Update(float32(dt))
	s.amplitude = float64(amp)
	if done {
		s.amplitude = 0
		s.active = false
	}
}

// Active reports whether the shake is still running.
func (s *Shake) Active() bool {
	return s.active
}

// Amplitude returns the current jitter amplitude.
func (s *Shake) Amplitude() float64 {
	return s.amplitude
}

// Offset returns a random X/Z jitter scaled by the current amplitude.
func (s *Shake) Offset() core.Vec3 {
	if !s.active {
		return core.Vec3{}
	}
	return core.V3(
		(s.rng.Float64()*2-1)*s.amplitude,
		0,
		(s.rng.Float64()*2-1)*s.amplitude,
	)
}
