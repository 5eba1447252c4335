package skyfaller

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/skyfaller/internal/core"
)

// Renderer draws one frame. Positions are relative to the eye, which looks
// down the -Y axis; the renderer owns projection.
type Renderer interface {
	DrawCube(pos core.Vec3, size float64, color core.Color)
	DrawText(text string, col, row int)
}

// Palette
const (
	PlayerColor   = core.ColorBrightGreen
	HitColor      = core.ColorBrightRed
	ObstacleColor = core.ColorBrightCyan
	HUDColor      = core.ColorBrightWhite
)

type cube struct {
	pos   core.Vec3
	size  float64
	color core.Color
}

// Render draws the obstacles, the player and the HUD.
// Cubes are emitted farthest first so painter-style renderers stack them
// correctly.
func (g *Game) Render(r Renderer) {
	s := g.session
	eye := s.Eye()

	obstacles := s.Pool().Obstacles()
	cubes := make([]cube, 0, len(obstacles)+1)
	for _, o := range obstacles {
		cubes = append(cubes, cube{o.Position.Sub(eye), o.Size, ObstacleColor})
	}

	p := s.Player()
	color := PlayerColor
	if g.shake.Active() {
		color = HitColor
	}
	cubes = append(cubes, cube{p.Position.Add(g.shake.Offset()).Sub(eye), p.Size, color})

	// Farther from the eye means a more negative relative Y
	sort.SliceStable(cubes, func(i, j int) bool {
		return cubes[i].pos.Y < cubes[j].pos.Y
	})
	for _, c := range cubes {
		r.DrawCube(c.pos, c.size, c.color)
	}

	for row, line := range g.hud() {
		r.DrawText(line, 1, row)
	}
}

// hud returns the overlay lines, top to bottom.
func (g *Game) hud() []string {
	s := g.session
	lines := []string{
		fmt.Sprintf("Score: %d", s.Score()),
		fmt.Sprintf("Lives: %d", s.Lives()),
	}

	switch {
	case s.Phase() == PhaseGameOver:
		lines = append(lines, "",
			"GAME OVER",
			fmt.Sprintf("Final score: %d", s.Score()),
			"Press R to restart or Q to quit",
		)
	case g.paused:
		lines = append(lines, "", "PAUSED", "Press P to resume")
	}
	return lines
}
