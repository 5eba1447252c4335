package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
)

// Debug font cell size in pixels.
const (
	charWidth  = 6
	lineHeight = 16
)

// rectOp is one projected cube, ready to fill.
type rectOp struct {
	X, Y, W, H float32
	Fill       color.RGBA
	Outline    color.RGBA
}

// textOp is one HUD line.
type textOp struct {
	Text string
	X, Y int
}

// Renderer draws cubes as filled squares in a window.
// Cubes are painted in call order, so callers emit them farthest first.
type Renderer struct {
	proj  core.Projector
	rects []rectOp
	texts []textOp
}

var _ skyfaller.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for a width x height pixel surface.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{}
	r.Begin(width, height)
	return r
}

// Begin starts a new frame on a width x height surface.
func (r *Renderer) Begin(width, height int) {
	r.proj = core.NewProjector(width, height, 1)
	r.rects = r.rects[:0]
	r.texts = r.texts[:0]
}

// DrawCube queues a cube given its position relative to the eye.
func (r *Renderer) DrawCube(pos core.Vec3, size float64, c core.Color) {
	p, ok := r.proj.Project(pos, size)
	if !ok {
		return
	}

	fill := Fogged(RGBA(c), r.proj.Fog(p.Depth))
	r.rects = append(r.rects, rectOp{
		X:       float32(p.CenterX - p.HalfW),
		Y:       float32(p.CenterY - p.HalfH),
		W:       float32(2 * p.HalfW),
		H:       float32(2 * p.HalfH),
		Fill:    fill,
		Outline: shade(fill),
	})
}

// DrawText queues a HUD line at a character cell position.
func (r *Renderer) DrawText(text string, col, row int) {
	r.texts = append(r.texts, textOp{Text: text, X: col * charWidth, Y: row * lineHeight})
}

// Flush paints the queued frame onto dst.
func (r *Renderer) Flush(dst *ebiten.Image) {
	dst.Fill(Background)
	for _, op := range r.rects {
		vector.FillRect(dst, op.X, op.Y, op.W, op.H, op.Fill, false)
		if op.W > 4 && op.H > 4 {
			vector.StrokeRect(dst, op.X, op.Y, op.W, op.H, 1, op.Outline, false)
		}
	}
	for _, op := range r.texts {
		ebitenutil.DebugPrintAt(dst, op.Text, op.X, op.Y)
	}
}
