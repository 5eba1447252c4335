package tui

import (
	"math"

	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
)

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// shadeRunes go from clear to deep in fog.
var shadeRunes = [4]rune{'█', '▓', '▒', '░'}

// CubeRenderer draws cubes as shaded rectangles on a character screen.
// A depth buffer keeps nearer cubes on top regardless of draw order.
type CubeRenderer struct {
	screen *core.Screen
	proj   core.Projector
	depth  []float64
}

var _ skyfaller.Renderer = (*CubeRenderer)(nil)

// NewCubeRenderer creates a renderer that draws onto screen.
func NewCubeRenderer(screen *core.Screen) *CubeRenderer {
	r := &CubeRenderer{screen: screen}
	r.Begin()
	return r
}

// Begin clears the screen and depth buffer for a new frame.
// It picks up any screen resize.
func (r *CubeRenderer) Begin() {
	w, h := r.screen.Width(), r.screen.Height()
	r.proj = core.NewProjector(w, h, CellAspect)
	if len(r.depth) != w*h {
		r.depth = make([]float64, w*h)
	}
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
	r.screen.Clear()
}

// DrawCube draws a cube given its position relative to the eye.
func (r *CubeRenderer) DrawCube(pos core.Vec3, size float64, color core.Color) {
	p, ok := r.proj.Project(pos, size)
	if !ok {
		return
	}

	level := int(r.proj.Fog(p.Depth) * float64(len(shadeRunes)))
	if level >= len(shadeRunes) {
		level = len(shadeRunes) - 1
	}
	shade := shadeRunes[level]
	c := color.Fade(level)

	b := p.Bounds()
	w := r.screen.Width()
	for y := max(b.Y, 0); y < min(b.Bottom(), r.screen.Height()); y++ {
		for x := max(b.X, 0); x < min(b.Right(), w); x++ {
			i := y*w + x
			if p.Depth >= r.depth[i] {
				continue
			}
			r.depth[i] = p.Depth
			r.screen.SetColored(x, y, shade, c)
		}
	}
}

// DrawText writes HUD text. Text always stays above cubes.
func (r *CubeRenderer) DrawText(text string, col, row int) {
	if row < 0 || row >= r.screen.Height() {
		return
	}
	w := r.screen.Width()
	x := col
	for _, ch := range text {
		if x >= 0 && x < w {
			r.depth[row*w+x] = math.Inf(-1)
			r.screen.SetColored(x, row, ch, skyfaller.HUDColor)
		}
		x++
	}
}
