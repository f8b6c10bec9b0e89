package geom

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Rotate applies intrinsic rotations about X, then Y, then Z. The order is
// fixed: each rotation acts on the already-rotated frame, so the three calls
// do not commute.
func Rotate(v Vec3, ax, ay, az float64) Vec3 {
	cx, sx := math.Cos(ax), math.Sin(ax)
	v.Y, v.Z = v.Y*cx-v.Z*sx, v.Y*sx+v.Z*cx
	cy, sy := math.Cos(ay), math.Sin(ay)
	v.X, v.Z = v.X*cy+v.Z*sy, -v.X*sy+v.Z*cy
	cz, sz := math.Cos(az), math.Sin(az)
	v.X, v.Y = v.X*cz-v.Y*sz, v.X*sz+v.Y*cz
	return v
}
