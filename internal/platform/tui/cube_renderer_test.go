package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
)

func TestCubeRendererCentersCubeBelowEye(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewCubeRenderer(screen)

	r.DrawCube(core.V3(0, -10, 0), 1, core.ColorBrightGreen)

	center := screen.GetCell(40, 12)
	if center.Rune != shadeRunes[0] {
		t.Errorf("center rune = %q, expected %q", center.Rune, shadeRunes[0])
	}
	if center.Color != core.ColorBrightGreen {
		t.Errorf("near cube should keep its color, got %v", center.Color)
	}
	if screen.Get(0, 0) != ' ' {
		t.Error("corner should stay empty")
	}
}

func TestCubeRendererDepthOrder(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewCubeRenderer(screen)

	// Near cube first, then a far one behind it
	r.DrawCube(core.V3(0, -10, 0), 1, core.ColorBrightGreen)
	r.DrawCube(core.V3(0, -30, 0), 2, core.ColorBrightCyan)

	if c := screen.GetCell(40, 12); c.Color != core.ColorBrightGreen {
		t.Errorf("nearer cube should stay on top, got color %v", c.Color)
	}
}

func TestCubeRendererFog(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewCubeRenderer(screen)

	r.DrawCube(core.V3(0, -45, 0), 2, core.ColorBrightCyan)

	c := screen.GetCell(40, 12)
	if c.Rune == shadeRunes[0] || c.Rune == ' ' {
		t.Errorf("distant cube should be drawn with a fog shade, got %q", c.Rune)
	}
	if c.Color == core.ColorBrightCyan {
		t.Error("distant cube should be faded")
	}
}

func TestCubeRendererSkipsInvisible(t *testing.T) {
	screen := core.NewScreen(40, 12)
	r := NewCubeRenderer(screen)

	r.DrawCube(core.V3(0, 5, 0), 1, core.ColorBrightRed)   // above the eye
	r.DrawCube(core.V3(0, -80, 0), 2, core.ColorBrightRed) // beyond far plane
	r.DrawCube(core.V3(500, -10, 0), 1, core.ColorBrightRed)

	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("nothing should be drawn, got:\n%s", screen.String())
	}
}

func TestCubeRendererTextOnTop(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewCubeRenderer(screen)

	r.DrawText("Score: 12", 1, 0)
	r.DrawCube(core.V3(0, -0.5, 0), 5, core.ColorBrightCyan) // covers the whole screen

	if got := string([]rune(screen.Row(0))[1:10]); got != "Score: 12" {
		t.Errorf("HUD row = %q", got)
	}
	if c := screen.GetCell(1, 0); c.Color != skyfaller.HUDColor {
		t.Errorf("HUD color = %v, expected %v", c.Color, skyfaller.HUDColor)
	}
}

func TestCubeRendererBeginClearsAndResizes(t *testing.T) {
	screen := core.NewScreen(40, 12)
	r := NewCubeRenderer(screen)
	r.DrawCube(core.V3(0, -10, 0), 1, core.ColorBrightGreen)

	screen.Resize(60, 20)
	r.Begin()
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("Begin() should clear the screen")
	}
	if len(r.depth) != 60*20 {
		t.Errorf("depth buffer size = %d, expected %d", len(r.depth), 60*20)
	}

	r.DrawCube(core.V3(0, -10, 0), 1, core.ColorBrightGreen)
	if screen.Get(30, 10) != shadeRunes[0] {
		t.Error("cube should be drawn at the new center")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(20, 2)
	screen.DrawTextColored(0, 0, "Lives: 3", core.ColorBrightWhite)
	screen.DrawTextColored(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(screen)
	if !strings.Contains(out, "Lives: 3") || !strings.Contains(out, "plain") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
