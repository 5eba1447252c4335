package skyfaller

import (
	"math/rand"

	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/core"
)

// Obstacle is a hazard cube.
type Obstacle struct {
	Position core.Vec3
	Size     float64 // Half-extent
}

// Pool holds the bounded set of active obstacles.
// It spawns new ones on a timer and recycles those that pass the camera,
// so the field is endless while memory stays bounded.
type Pool struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	spawn     config.SpawnConfig
	field     core.Bounds
	lastSpawn float64 // Clock reading of the last spawn
	interval  float64 // Seconds that must pass before the next spawn
}

// NewPool creates an empty pool whose spawn timer starts at now.
func NewPool(seed int64, cfg *config.SkyfallerConfig, now float64) *Pool {
	p := &Pool{
		obstacles: make([]Obstacle, 0, cfg.Obstacles.Max),
		cfg:       cfg.Obstacles,
		spawn:     cfg.Spawn,
		field:     cfg.Field.Range(),
	}
	p.Reset(seed, now)
	return p
}

// Reset clears all obstacles and resets the RNG and spawn timer.
func (p *Pool) Reset(seed int64, now float64) {
	p.obstacles = p.obstacles[:0]
	p.rng = rand.New(rand.NewSource(seed))
	p.lastSpawn = now
	p.interval = p.spawn.InitialInterval
}

// Spawn adds one obstacle below the camera if the spawn interval has
// elapsed and the pool has room. Returns true if an obstacle was added.
func (p *Pool) Spawn(now, cameraY float64) bool {
	if now-p.lastSpawn <= p.interval || len(p.obstacles) >= p.cfg.Max {
		return false
	}

	p.obstacles = append(p.obstacles, Obstacle{
		Position: core.V3(p.randomInField(), cameraY-p.cfg.Distance, p.randomInField()),
		Size:     p.randomSize(),
	})
	p.lastSpawn = now
	p.interval = p.nextInterval()
	return true
}

// Move raises every obstacle by speed. Obstacles that climb past
// cameraY+recycle_margin are sent back below the camera at a new spot.
// Returns how many were recycled.
func (p *Pool) Move(speed, cameraY float64) int {
	recycled := 0
	limit := cameraY + p.cfg.RecycleMargin

	for i := range p.obstacles {
		o := &p.obstacles[i]
		o.Position.Y += speed
		if o.Position.Y > limit {
			o.Position = core.V3(p.randomInField(), cameraY-p.cfg.Distance, p.randomInField())
			recycled++
		}
	}
	return recycled
}

// FirstHit returns the index of the first obstacle, in pool order, that
// overlaps a cube at pos with the given half-extent, or -1.
func (p *Pool) FirstHit(pos core.Vec3, size float64) int {
	for i, o := range p.obstacles {
		if core.Overlaps(o.Position, o.Size, pos, size) {
			return i
		}
	}
	return -1
}

// RemoveAt deletes the obstacle at index i, keeping the order of the rest.
func (p *Pool) RemoveAt(i int) Obstacle {
	o := p.obstacles[i]
	p.obstacles = append(p.obstacles[:i], p.obstacles[i+1:]...)
	return o
}

// Obstacles returns the active obstacles. Callers must not modify it.
func (p *Pool) Obstacles() []Obstacle {
	return p.obstacles
}

// Len returns the number of active obstacles.
func (p *Pool) Len() int {
	return len(p.obstacles)
}

// Capacity returns the maximum number of simultaneous obstacles.
func (p *Pool) Capacity() int {
	return p.cfg.Max
}

// Field returns the X/Z range obstacles are placed in.
func (p *Pool) Field() core.Bounds {
	return p.field
}

// delay shifts the spawn timer, e.g. after a pause.
func (p *Pool) delay(d float64) {
	p.lastSpawn += d
}

func (p *Pool) randomInField() float64 {
	return p.field.Min + p.rng.Float64()*(p.field.Max-p.field.Min)
}

func (p *Pool) randomSize() float64 {
	if p.cfg.SizeJitter <= 0 {
		return p.cfg.Size
	}
	return p.cfg.Size + (p.rng.Float64()*2-1)*p.cfg.SizeJitter
}

// nextInterval draws the wait before the following spawn.
func (p *Pool) nextInterval() float64 {
	lo, hi := p.spawn.IntervalMin, p.spawn.IntervalMax
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Float64()*(hi-lo)
}
