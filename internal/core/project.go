package core

import "math"

// Projector maps camera-relative positions onto a 2D surface.
// The camera looks straight down the negative Y axis; world X runs to the
// right of the surface and world Z towards its top.
type Projector struct {
	Width, Height float64 // Surface size in cells or pixels
	CellAspect    float64 // Height of one surface unit divided by its width
	FOV           float64 // Vertical field of view in radians
	Near, Far     float64 // Visible depth range
	FogStart      float64 // Depth where fog begins
	FogEnd        float64 // Depth where fog is total
}

// Projected is a cube's footprint on the surface.
type Projected struct {
	CenterX, CenterY float64
	HalfW, HalfH     float64
	Depth            float64
}

// Bounds returns the covered surface rectangle, rounded outward.
func (p Projected) Bounds() Rect {
	x0 := int(math.Floor(p.CenterX - p.HalfW))
	y0 := int(math.Floor(p.CenterY - p.HalfH))
	x1 := int(math.Ceil(p.CenterX + p.HalfW))
	y1 := int(math.Ceil(p.CenterY + p.HalfH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// NewProjector creates a projector with a 90 degree view, a 0.1..50 depth
// range and linear fog from 20 to 50 units.
func NewProjector(width, height int, cellAspect float64) Projector {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	return Projector{
		Width:      float64(width),
		Height:     float64(height),
		CellAspect: cellAspect,
		FOV:        math.Pi / 2,
		Near:       0.1,
		Far:        50,
		FogStart:   20,
		FogEnd:     50,
	}
}

// Project returns the footprint of a cube with the given half-extent.
// The cube is invisible when it is behind the camera or beyond Far.
func (pr Projector) Project(rel Vec3, size float64) (Projected, bool) {
	depth := -rel.Y
	if depth < pr.Near || depth > pr.Far || pr.Width <= 0 || pr.Height <= 0 {
		return Projected{}, false
	}

	focal := 1 / math.Tan(pr.FOV/2)
	aspect := pr.Width / (pr.Height * pr.CellAspect)

	ndcX := rel.X * focal / (depth * aspect)
	ndcY := rel.Z * focal / depth
	halfX := size * focal / (depth * aspect)
	halfY := size * focal / depth

	p := Projected{
		CenterX: (ndcX + 1) * pr.Width / 2,
		CenterY: (1 - ndcY) * pr.Height / 2,
		HalfW:   halfX * pr.Width / 2,
		HalfH:   halfY * pr.Height / 2,
		Depth:   depth,
	}

	if p.CenterX+p.HalfW < 0 || p.CenterX-p.HalfW > pr.Width ||
		p.CenterY+p.HalfH < 0 || p.CenterY-p.HalfH > pr.Height {
		return Projected{}, false
	}
	return p, true
}

// Fog returns how much of a cube at the given depth is hidden by fog,
// from 0 (clear) to 1 (fully fogged).
func (pr Projector) Fog(depth float64) float64 {
	if pr.FogEnd <= pr.FogStart {
		return 0
	}
	return ClampF((depth-pr.FogStart)/(pr.FogEnd-pr.FogStart), 0, 1)
}
