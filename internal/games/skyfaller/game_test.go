package skyfaller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New(config.DefaultSkyfallerConfig())
	g.Reset(testRuntime(seed))
	return g
}

func steerPattern(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch (i / 40) % 3 {
		case 0:
			frames[i].Set(core.ActionLeft)
		case 2:
			frames[i].Set(core.ActionRight)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	inputs := steerPattern(1200)

	g1 := newTestGame(12345)
	g2 := newTestGame(12345)
	for _, in := range inputs {
		g1.Step(in)
		g2.Step(in)
	}

	if g1.State() != g2.State() {
		t.Errorf("states differ: %+v vs %+v", g1.State(), g2.State())
	}
	o1, o2 := g1.Session().Pool().Obstacles(), g2.Session().Pool().Obstacles()
	if len(o1) != len(o2) {
		t.Fatalf("pool sizes differ: %d vs %d", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, o1[i], o2[i])
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)
	for _, in := range steerPattern(300) {
		g.Step(in)
	}
	if g.Session().Pool().Len() == 0 {
		t.Fatal("obstacles should have spawned after 5 seconds")
	}

	g.Reset(testRuntime(43))
	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("Reset() should start a fresh session, got %+v", state)
	}
	if state.Lives != g.Config().Player.Lives {
		t.Errorf("Lives = %d, expected %d", state.Lives, g.Config().Player.Lives)
	}
	if g.Session().Pool().Len() != 0 {
		t.Error("Reset() should clear obstacles")
	}
	if g.Runtime().Seed != 43 || g.Session().Seed() != 43 {
		t.Errorf("Reset() should adopt the new seed, runtime = %+v", g.Runtime())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	elapsed := g.Session().Elapsed()
	y := g.Session().Player().Position.Y

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Elapsed() != elapsed || g.Session().Player().Position.Y != y {
		t.Error("session should not advance while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Fatal("game should be resumed")
	}
	// The two seconds spent paused do not count
	if got := g.Session().Elapsed(); got > elapsed+0.1 {
		t.Errorf("Elapsed() = %f after resume, expected about %f", got, elapsed)
	}
}

func TestGameCollisionLogsAndShakes(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(7)
	g.SetLogger(log.New(&buf))

	g.session.pool.obstacles = []Obstacle{{Position: core.V3(0, -0.5, 0), Size: 1}}
	res := g.Step(core.NewInputFrame())

	if !res.Collided {
		t.Fatal("expected a collision")
	}
	if res.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", res.State.Lives)
	}
	if !g.shake.Active() {
		t.Error("a hit should start the shake")
	}
	if !strings.Contains(buf.String(), "obstacle hit") {
		t.Errorf("collision should be logged, got %q", buf.String())
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(7)
	g.SetLogger(log.New(&buf))
	g.session.player.Lives = 1

	g.session.pool.obstacles = []Obstacle{{Position: core.V3(0, 0, 0), Size: 1}}
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("game over should be logged, got %q", buf.String())
	}

	score := res.State.Score
	for _, in := range steerPattern(100) {
		res = g.Step(in)
	}
	if !res.State.GameOver || res.State.Score != score || res.State.Lives != 0 {
		t.Errorf("state should be frozen after game over, got %+v", res.State)
	}
}

func TestGameExternalClock(t *testing.T) {
	clock := core.NewStepClock(10)
	g := New(config.DefaultSkyfallerConfig())
	g.SetClock(clock)
	g.Reset(testRuntime(1))

	// The game must not advance an external clock itself
	g.Step(core.NewInputFrame())
	if g.Session().Elapsed() != 0 {
		t.Errorf("Elapsed() = %f, expected 0", g.Session().Elapsed())
	}

	clock.Set(2)
	g.Step(core.NewInputFrame())
	if g.Session().Elapsed() != 2 {
		t.Errorf("Elapsed() = %f, expected 2", g.Session().Elapsed())
	}
}

func TestGameClockChangeWaitsForReset(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	elapsed := g.Session().Elapsed()

	clock := core.NewStepClock(60)
	clock.Set(1000)
	g.SetClock(clock)
	g.Step(core.NewInputFrame())
	if got := g.Session().Elapsed(); got-elapsed > 0.05 {
		t.Fatalf("SetClock() changed the running session: elapsed %f -> %f", elapsed, got)
	}

	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())
	if g.Session().Elapsed() != 0 {
		t.Errorf("after Reset the session should follow the new clock, elapsed = %f", g.Session().Elapsed())
	}
}

func TestGameNilClockFallsBackToStepClock(t *testing.T) {
	g := New(config.DefaultSkyfallerConfig())
	g.SetClock(core.NewStepClock(10))
	g.Reset(testRuntime(1))

	g.SetClock(nil)
	g.Step(core.NewInputFrame())

	g.Reset(testRuntime(1))
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.Session().Elapsed(); got < 0.99 || got > 1.01 {
		t.Errorf("step clock should give 1s after 60 frames, got %f", got)
	}
}

type recordedCube struct {
	pos   core.Vec3
	size  float64
	color core.Color
}

type fakeRenderer struct {
	cubes []recordedCube
	text  []string
}

func (r *fakeRenderer) DrawCube(pos core.Vec3, size float64, color core.Color) {
	r.cubes = append(r.cubes, recordedCube{pos, size, color})
}

func (r *fakeRenderer) DrawText(text string, col, row int) {
	r.text = append(r.text, text)
}

func TestRenderDrawsEveryCube(t *testing.T) {
	g := newTestGame(3)
	g.session.pool.obstacles = []Obstacle{
		{Position: core.V3(5, -30, 5), Size: 2},
		{Position: core.V3(-5, -60, 0), Size: 2},
		{Position: core.V3(0, -10, 8), Size: 2},
	}

	var r fakeRenderer
	g.Render(&r)

	if len(r.cubes) != 4 {
		t.Fatalf("drew %d cubes, expected 4", len(r.cubes))
	}
	for i := 1; i < len(r.cubes); i++ {
		if r.cubes[i].pos.Y < r.cubes[i-1].pos.Y {
			t.Errorf("cubes should be drawn farthest first")
		}
	}

	// The player is nearest the eye and drawn last
	last := r.cubes[len(r.cubes)-1]
	if last.color != PlayerColor {
		t.Errorf("last cube color = %v, expected the player", last.color)
	}
	if want := -g.Config().Camera.EyeHeight; last.pos.Y != want {
		t.Errorf("player relative y = %f, expected %f", last.pos.Y, want)
	}

	if len(r.text) == 0 || !strings.HasPrefix(r.text[0], "Score:") {
		t.Errorf("HUD should start with the score, got %q", r.text)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(3)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	var r fakeRenderer
	g.Render(&r)
	if !strings.Contains(strings.Join(r.text, "\n"), "PAUSED") {
		t.Errorf("paused overlay missing: %q", r.text)
	}

	g = newTestGame(3)
	g.session.player.Lives = 1
	g.session.pool.obstacles = []Obstacle{{Position: core.V3(0, 0, 0), Size: 1}}
	g.Step(core.NewInputFrame())

	r = fakeRenderer{}
	g.Render(&r)
	if !strings.Contains(strings.Join(r.text, "\n"), "GAME OVER") {
		t.Errorf("game over overlay missing: %q", r.text)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultSkyfallerConfig())
	if g.ID() != "skyfaller" || g.Title() != "Skyfaller" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}
