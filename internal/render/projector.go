package render

import (
	"github.com/san-kum/spincube/internal/geom"
)

// Projector maps 3D points to discrete screen coordinates using a simple
// perspective divide by depth.
type Projector struct {
	Width, Height   int
	Scale, Distance float64
}

// Project converts a point to screen coordinates, truncated and clamped to
// [0,Width-1] x [0,Height-1]. A zero denominator cannot occur with the
// fixed cube geometry and positive Distance; if it does, the point
// saturates to the screen edge instead of dividing.
func (p Projector) Project(v geom.Vec3) (int, int) {
	denom := v.Z + p.Distance
	if denom == 0 {
		return saturate(v.X, p.Width), saturate(v.Y, p.Height)
	}
	factor := p.Scale / denom
	x := clampToCell(v.X*factor+float64(p.Width)/2, p.Width)
	y := clampToCell(v.Y*factor+float64(p.Height)/2, p.Height)
	return x, y
}

// clampToCell clamps in float space before truncating so that huge factors
// never overflow the int conversion.
func clampToCell(f float64, n int) int {
	if f < 0 {
		return 0
	}
	if f > float64(n-1) {
		return n - 1
	}
	return int(f)
}

func saturate(coord float64, n int) int {
	if coord < 0 {
		return 0
	}
	return n - 1
}
