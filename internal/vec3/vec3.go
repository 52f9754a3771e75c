// Package vec3 provides the small 3D vector and rotation math used by the
// mutation engine's chain-building geometry.
package vec3

import "math"

// Vec is a 3D vector with float64 components. Store coordinates are float32;
// geometry runs in float64 and narrows on write-back.
type Vec struct {
	X, Y, Z float64
}

// FromFloat32 widens store coordinates.
func FromFloat32(x, y, z float32) Vec {
	return Vec{float64(x), float64(y), float64(z)}
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product.
func (v Vec) Dot(w Vec) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns |v|.
func (v Vec) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v/|v|, or the zero vector when |v| is zero.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Distance returns |v - w|.
func (v Vec) Distance(w Vec) float64 { return v.Sub(w).Length() }

// RotateAround rotates v about the given unit axis by angle radians
// (Rodrigues' formula).
func (v Vec) RotateAround(axis Vec, angle float64) Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	return v.Scale(c).
		Add(axis.Cross(v).Scale(s)).
		Add(axis.Scale(axis.Dot(v) * (1 - c)))
}

// RotationBetween returns unit axis and angle rotating unit vector a onto
// unit vector b. For (anti)parallel inputs an arbitrary perpendicular axis is
// chosen.
func RotationBetween(a, b Vec) (axis Vec, angle float64) {
	d := a.Dot(b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	angle = math.Acos(d)
	axis = a.Cross(b)
	if axis.Length() < 1e-9 {
		axis = a.Cross(Vec{1, 0, 0})
		if axis.Length() < 1e-9 {
			axis = a.Cross(Vec{0, 1, 0})
		}
	}
	return axis.Normalize(), angle
}

// PlaneNormal returns the unit normal of the plane through points a, b, c.
func PlaneNormal(a, b, c Vec) Vec {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
