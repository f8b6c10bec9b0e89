package geom_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spincube/internal/geom"
)

const tol = 1e-9

var _ = Describe("Rotate", func() {
	points := []geom.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: 2.5, Z: -0.75},
		{X: 1, Y: 1, Z: 1},
	}

	It("is the identity for zero angles", func() {
		for _, p := range points {
			Expect(geom.Rotate(p, 0, 0, 0)).To(Equal(p))
		}
	})

	It("is periodic with period 2π on each axis", func() {
		for _, p := range points {
			for _, angles := range [][3]float64{
				{2 * math.Pi, 0, 0},
				{0, 2 * math.Pi, 0},
				{0, 0, 2 * math.Pi},
			} {
				r := geom.Rotate(p, angles[0], angles[1], angles[2])
				Expect(r.X).To(BeNumerically("~", p.X, tol))
				Expect(r.Y).To(BeNumerically("~", p.Y, tol))
				Expect(r.Z).To(BeNumerically("~", p.Z, tol))
			}
		}
	})

	It("tolerates arbitrarily large angles", func() {
		p := geom.Vec3{X: 1, Y: -1, Z: 0.5}
		big := 1e8 * math.Pi
		r := geom.Rotate(p, big, -big, 2*big)
		Expect(math.IsNaN(r.X) || math.IsNaN(r.Y) || math.IsNaN(r.Z)).To(BeFalse())
	})

	It("preserves vector length", func() {
		for _, p := range points {
			r := geom.Rotate(p, 0.3, -1.1, 2.7)
			Expect(r.Length()).To(BeNumerically("~", p.Length(), tol))
		}
	})

	It("applies X before Y before Z", func() {
		p := geom.Vec3{X: 0, Y: 1, Z: 0}
		// π/2 about X sends +Y to +Z; π/2 about Y then sends +Z to +X.
		r := geom.Rotate(p, math.Pi/2, math.Pi/2, 0)
		Expect(r.X).To(BeNumerically("~", 1, tol))
		Expect(r.Y).To(BeNumerically("~", 0, tol))
		Expect(r.Z).To(BeNumerically("~", 0, tol))

		// Reversed order would leave +Y untouched by the Y rotation first.
		rev := geom.Rotate(geom.Rotate(p, 0, math.Pi/2, 0), math.Pi/2, 0, 0)
		Expect(rev.Z).To(BeNumerically("~", 1, tol))
	})
})

var _ = Describe("Cube geometry", func() {
	It("has 8 vertices at the corners of the cube", func() {
		verts := geom.CubeVertices(1.0)
		Expect(verts).To(HaveLen(8))
		for _, v := range verts {
			Expect(math.Abs(v.X)).To(Equal(1.0))
			Expect(math.Abs(v.Y)).To(Equal(1.0))
			Expect(math.Abs(v.Z)).To(Equal(1.0))
		}
	})

	It("has 12 edges each of length 2·size", func() {
		verts := geom.CubeVertices(1.0)
		Expect(geom.CubeEdges).To(HaveLen(12))
		for _, e := range geom.CubeEdges {
			d := verts[e[0]].Sub(verts[e[1]])
			Expect(d.Length()).To(BeNumerically("~", 2.0, tol))
		}
	})

	It("touches every vertex exactly three times", func() {
		deg := make(map[int]int)
		for _, e := range geom.CubeEdges {
			deg[e[0]]++
			deg[e[1]]++
		}
		for i := 0; i < 8; i++ {
			Expect(deg[i]).To(Equal(3))
		}
	})
})
