package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/skyfaller/internal/config"
	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
)

func TestRendererProjectsCube(t *testing.T) {
	r := NewRenderer(800, 600)
	r.DrawCube(core.V3(0, -10, 0), 1, core.ColorBrightGreen)

	if len(r.rects) != 1 {
		t.Fatalf("queued %d rects, expected 1", len(r.rects))
	}
	op := r.rects[0]
	cx, cy := op.X+op.W/2, op.Y+op.H/2
	if cx < 399 || cx > 401 || cy < 299 || cy > 301 {
		t.Errorf("cube below the eye should be centered, got center (%f, %f)", cx, cy)
	}
	if op.W <= 0 || op.H <= 0 {
		t.Errorf("empty rect %+v", op)
	}
	if op.Fill != RGBA(core.ColorBrightGreen) {
		t.Errorf("near cube should not be fogged, got %v", op.Fill)
	}
}

func TestRendererShrinksWithDepth(t *testing.T) {
	r := NewRenderer(800, 600)
	r.DrawCube(core.V3(0, -5, 0), 1, core.ColorBrightCyan)
	r.DrawCube(core.V3(0, -20, 0), 1, core.ColorBrightCyan)

	if r.rects[1].W >= r.rects[0].W {
		t.Errorf("farther cube should be smaller: %f >= %f", r.rects[1].W, r.rects[0].W)
	}
}

func TestRendererSkipsInvisible(t *testing.T) {
	r := NewRenderer(800, 600)
	r.DrawCube(core.V3(0, 3, 0), 1, core.ColorBrightRed)
	r.DrawCube(core.V3(0, -100, 0), 2, core.ColorBrightRed)

	if len(r.rects) != 0 {
		t.Errorf("queued %d rects for invisible cubes", len(r.rects))
	}
}

func TestRendererBeginResets(t *testing.T) {
	r := NewRenderer(800, 600)
	r.DrawCube(core.V3(0, -10, 0), 1, core.ColorBrightGreen)
	r.DrawText("Score: 1", 1, 0)

	r.Begin(400, 300)
	if len(r.rects) != 0 || len(r.texts) != 0 {
		t.Error("Begin() should drop the previous frame")
	}
	if r.proj.Width != 400 || r.proj.Height != 300 {
		t.Errorf("projector size = %fx%f", r.proj.Width, r.proj.Height)
	}
}

func TestRendererText(t *testing.T) {
	r := NewRenderer(800, 600)
	r.DrawText("Lives: 3", 1, 2)

	want := textOp{Text: "Lives: 3", X: charWidth, Y: 2 * lineHeight}
	if len(r.texts) != 1 || r.texts[0] != want {
		t.Errorf("texts = %+v, expected %+v", r.texts, want)
	}
}

func TestRendererWithGame(t *testing.T) {
	g := skyfaller.New(config.DefaultSkyfallerConfig())
	r := NewRenderer(800, 600)
	g.Render(r)

	// Only the player is in view at the start
	if len(r.rects) != 1 {
		t.Errorf("queued %d rects, expected 1", len(r.rects))
	}
	if len(r.texts) < 2 {
		t.Errorf("HUD should have score and lives, got %+v", r.texts)
	}
}

func TestFogged(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := Fogged(c, 0); got != c {
		t.Errorf("Fogged(c, 0) = %v, expected %v", got, c)
	}
	if got := Fogged(c, 1); got != Background {
		t.Errorf("Fogged(c, 1) = %v, expected background %v", got, Background)
	}
	if got := Fogged(c, 2); got != Background {
		t.Error("fog above 1 should clamp")
	}

	mid := Fogged(c, 0.5)
	if mid.R >= c.R || mid.R <= Background.R {
		t.Errorf("half fog should land between, got %v", mid)
	}
}

func TestRGBAUnknownFallsBack(t *testing.T) {
	if RGBA(core.Color(200)) != RGBA(core.ColorDefault) {
		t.Error("unknown colors should use the default")
	}
}
