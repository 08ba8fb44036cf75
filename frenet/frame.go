// Package frenet tracks a discrete Frenet frame along a polyline and detects
// inflection points from discontinuities of its normal.
//
// The frame at an interior point is built from its two neighbours:
//
//	v  = p[i+1] - p[i-1]            velocity
//	a  = (p[i+1]-p[i]) - (p[i]-p[i-1])  acceleration
//	T  = v / |v|
//	N  = v × (a × v) / |v × (a × v)|  when |a| > epsilon
//	B  = T × N
//
// When the acceleration vanishes (the polyline is locally straight, e.g. a
// sine crossing its axis) the normal cannot be derived from a. If a binormal
// was computed earlier, the normal is rebuilt as B × T. This assumes no pure
// torsion around N happened since the last valid frame; it is an
// approximation, and an inflection crossing a straight run would otherwise
// be missed.
//
// An inflection is reported when |N[i] - N[i-1]|² exceeds 1 + epsilon, that
// is when the normal turned by more than 60 degrees between two points.
package frenet

import (
	"github.com/akmonengine/tortuosity/geometry"
)

// InitialInflectionCount is the count before any reversal is seen: a curve
// has at least one principal bending direction.
const InitialInflectionCount = 1

// Frame is the local orthonormal basis at a point
type Frame struct {
	Tangent  geometry.Vector
	Normal   geometry.Vector
	Binormal geometry.Vector
}

// Tracker carries the frame from one interior point to the next.
// The zero value is not ready, use NewTracker.
type Tracker struct {
	Frame

	previousNormal  geometry.Vector
	binormalIsValid bool
	inflectionCount int
	epsilon         float64
}

func NewTracker(epsilon float64) *Tracker {
	return &Tracker{
		inflectionCount: InitialInflectionCount,
		epsilon:         epsilon,
	}
}

// Step is the outcome of one Advance call
type Step struct {
	// Evaluated is false when neither the acceleration nor a previous
	// binormal could provide a normal
	Evaluated bool
	// Value is |N[i] - N[i-1]|², 0 when the step was not evaluated
	Value float64
	// Inflection is true when Value exceeded 1 + epsilon
	Inflection bool
}

// Advance updates the frame at the interior point current, given its
// neighbours, and returns the inflection signal for that point.
// Points must be fed in polyline order: the fallback normal depends on the
// binormal of the previous call.
func (t *Tracker) Advance(previous, current, next geometry.Point) Step {
	t1 := current.Sub(previous)
	t2 := next.Sub(current)
	v := next.Sub(previous)
	a := t2.Sub(t1)

	t.Tangent = v
	geometry.SafeNormalize(&t.Tangent)

	evaluated := a.Len() > t.epsilon
	if evaluated {
		t.Normal = v.Cross(a.Cross(v))
		geometry.SafeNormalize(&t.Normal)
		t.binormalIsValid = true
	} else if t.binormalIsValid {
		t.Normal = t.Binormal.Cross(t.Tangent)
		geometry.SafeNormalize(&t.Normal)
		evaluated = true
	}

	// always recomputed, so a run of null accelerations keeps a consistent frame
	t.Binormal = t.Tangent.Cross(t.Normal)
	geometry.SafeNormalize(&t.Binormal)

	var step Step
	if evaluated {
		deltaN := t.Normal.Sub(t.previousNormal)
		step.Evaluated = true
		step.Value = deltaN.Dot(deltaN)
		if step.Value > 1.0+t.epsilon {
			step.Inflection = true
			t.inflectionCount++
		}
	}

	t.previousNormal = t.Normal
	return step
}

// InflectionCount returns the number of principal bending directions seen so
// far, starting at InitialInflectionCount
func (t *Tracker) InflectionCount() int {
	return t.inflectionCount
}

// BinormalIsValid reports whether a binormal has been derived from a
// non-null acceleration at least once
func (t *Tracker) BinormalIsValid() bool {
	return t.binormalIsValid
}
