// Package geometry holds the 3-D primitives shared by the tortuosity metrics.
//
// Points and vectors are both mgl64.Vec3: a Point is a position along the
// centerline, a Vector is the difference of two points (secant, velocity,
// acceleration, cross products). The helpers in this package are the two
// numerically guarded operations every metric relies on.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position on the polyline
type Point = mgl64.Vec3

// Vector is a displacement or direction between points
type Vector = mgl64.Vec3

// SafeNormalize scales v to unit length in place and returns the norm v had
// before scaling. A zero vector is left unchanged.
//
// Callers compare the returned norm against their epsilon: a vector that was
// almost null must not be treated as a valid direction just because it has
// been rescaled to length 1.
func SafeNormalize(v *Vector) float64 {
	norm := v.Len()
	if norm != 0.0 {
		v[0] /= norm
		v[1] /= norm
		v[2] /= norm
	}
	return norm
}

// SafeAcos returns the arccosine of x clamped to [-1, 1].
// Dot products of unit vectors drift slightly outside the domain after
// normalization, math.Acos would return NaN for those.
func SafeAcos(x float64) float64 {
	return math.Acos(mgl64.Clamp(x, -1.0, 1.0))
}

// Displacement returns the vector going from a to b
func Displacement(a, b Point) Vector {
	return b.Sub(a)
}
