// Package soam accumulates the Sum Of Angles Metric of a polyline.
//
// At each point having a predecessor and two successors, the local
// curvature is the combination of two angles:
//   - the in-plane angle between the incoming and outgoing segments
//   - the torsion angle between the two consecutive osculating planes,
//     measured between the normals t1 × t2 and t2 × t3
//
// References:
//   - Bullitt et al.: "Measuring Tortuosity of the Intracerebral Vasculature
//     from MRA Images" (IEEE TMI, 2003)
package soam

import (
	"math"

	"github.com/akmonengine/tortuosity/geometry"
)

// InPlaneAngle returns the angle between segments t1 and t2, or 0 if either
// segment is shorter than epsilon
func InPlaneAngle(t1, t2 geometry.Vector, epsilon float64) float64 {
	if geometry.SafeNormalize(&t1) <= epsilon || geometry.SafeNormalize(&t2) <= epsilon {
		return 0.0
	}
	return geometry.SafeAcos(t1.Dot(t2))
}

// TorsionAngle returns the angle between the plane (t1, t2) and the plane
// (t2, t3), or 0 if either plane is undefined.
// The epsilon test is made on the cross products before normalization: a
// nearly null cross product rescaled to unit length would produce a torsion
// angle out of numerical noise.
func TorsionAngle(t1, t2, t3 geometry.Vector, epsilon float64) float64 {
	n1 := t1.Cross(t2)
	n2 := t2.Cross(t3)
	if geometry.SafeNormalize(&n1) <= epsilon || geometry.SafeNormalize(&n2) <= epsilon {
		return 0.0
	}
	return geometry.SafeAcos(n1.Dot(n2))
}

// Accumulator sums the local curvature along the polyline
type Accumulator struct {
	epsilon        float64
	totalCurvature float64
	count          int
}

func NewAccumulator(epsilon float64) *Accumulator {
	return &Accumulator{epsilon: epsilon}
}

// Add accumulates the curvature at current, given the previous point and the
// two following ones, and returns the local contribution
func (acc *Accumulator) Add(previous, current, next, nextNext geometry.Point) float64 {
	t1 := current.Sub(previous)
	t2 := next.Sub(current)
	t3 := nextNext.Sub(next)

	inPlane := InPlaneAngle(t1, t2, acc.epsilon)
	torsion := TorsionAngle(t1, t2, t3, acc.epsilon)

	local := math.Sqrt(inPlane*inPlane + torsion*torsion)
	acc.totalCurvature += local
	acc.count++

	return local
}

// TotalCurvature returns the sum of every local contribution
func (acc *Accumulator) TotalCurvature() float64 {
	return acc.totalCurvature
}

// Count returns the number of points accumulated
func (acc *Accumulator) Count() int {
	return acc.count
}
