package engine

import (
	"github.com/san-kum/spincube/internal/geom"
	"github.com/san-kum/spincube/internal/render"
)

// Renderer turns a pair of rotation angles into a rasterized cube frame.
// It is the stateless half of the pipeline, shared by the classic loop and
// the TUI.
type Renderer struct {
	Proj  render.Projector
	verts []geom.Vec3
	mark  byte
}

func NewRenderer(proj render.Projector, cubeSize float64, mark byte) *Renderer {
	return &Renderer{Proj: proj, verts: geom.CubeVertices(cubeSize), mark: mark}
}

// Frame rotates, projects, and rasterizes the cube for the given x/y
// angles. The z angle is derived from the other two, not independently
// controlled.
func (r *Renderer) Frame(ax, ay float64) *render.Framebuffer {
	az := DeriveZ(ax, ay)

	type pt struct{ x, y int }
	projected := make([]pt, len(r.verts))
	for i, v := range r.verts {
		sx, sy := r.Proj.Project(geom.Rotate(v, ax, ay, az))
		projected[i] = pt{sx, sy}
	}

	fb := render.NewFramebuffer(r.Proj.Width, r.Proj.Height, r.mark)
	for _, e := range geom.CubeEdges {
		a, b := projected[e[0]], projected[e[1]]
		fb.DrawLine(a.x, a.y, b.x, b.y)
	}
	return fb
}

// DeriveZ couples the z angle to the controllable axes for a bit of extra
// spin.
func DeriveZ(ax, ay float64) float64 { return 0.5*ax + 0.5*ay }
