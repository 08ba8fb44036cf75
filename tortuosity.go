// Package tortuosity computes shape complexity metrics of an ordered 3-D
// polyline, typically the centerline of a vessel.
//
// Three metrics are available:
//   - Distance Metric (DM): path length over the straight line length
//   - Inflection Count Metric (ICM): number of bending directions times DM
//   - Sum Of Angles Metric (SOAM): accumulated in-plane and torsion angles
//     over the path length
//
// plus the per-point inflection values used to count reversals.
//
// Everything is computed in a single forward pass: the Frenet frame at a
// point depends on the frame of the previous one, so the pass cannot be split
// across goroutines. Independent polylines can be computed concurrently.
package tortuosity

import (
	"math"

	"github.com/akmonengine/tortuosity/frenet"
	"github.com/akmonengine/tortuosity/geometry"
	"github.com/akmonengine/tortuosity/soam"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const DEFAULT_EPSILON = 1e-6

// Options selects the metrics and the degeneracy threshold
type Options struct {
	Measure Measure
	// Epsilon is the norm below which accelerations, segments and cross
	// products are considered null
	Epsilon float64
}

// DefaultOptions requests every metric with the default epsilon
func DefaultOptions() Options {
	return Options{
		Measure: ALL_METRICS,
		Epsilon: DEFAULT_EPSILON,
	}
}

// accumulation is the state gathered by the forward pass
type accumulation struct {
	pathLength      float64
	chordLength     float64
	inflectionCount int
	totalCurvature  float64
}

// Compute returns the metrics requested by opts for points.
// It fails with ErrTooFewPoints if points holds less than 2 points, and with
// a *ComputationError if a metric breaks its invariant: DM or ICM requested
// on a polyline whose ends coincide, DM below 1, SOAM on a null path, or a
// non-finite metric. points is never modified.
func Compute(points []geometry.Point, opts Options) (Result, error) {
	if len(points) < 2 {
		return Result{}, errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = DEFAULT_EPSILON
	}

	var result Result
	acc := traverse(points, opts, &result)

	return finalize(acc, opts.Measure, result)
}

// traverse runs the single pass over points. The inflection series is written
// into result when requested.
func traverse(points []geometry.Point, opts Options, result *Result) accumulation {
	numberOfPoints := len(points)
	icm := opts.Measure.Has(INFLECTION_COUNT_METRIC)
	ip := opts.Measure.Has(INFLECTION_POINTS)
	sum := opts.Measure.Has(SUM_OF_ANGLES_METRIC)

	if ip {
		result.InflectionPoints = make([]float64, numberOfPoints)
	}

	tracker := frenet.NewTracker(opts.Epsilon)
	angles := soam.NewAccumulator(opts.Epsilon)

	var acc accumulation
	for index := 0; index < numberOfPoints; index++ {
		current := points[index]
		previousPointAvailable := index > 0
		nextPointAvailable := index < numberOfPoints-1
		nPlus2PointAvailable := index < numberOfPoints-2

		if nextPointAvailable {
			acc.pathLength += geometry.Displacement(current, points[index+1]).Len()
		}

		if !previousPointAvailable || !nextPointAvailable {
			continue
		}

		if icm || ip {
			step := tracker.Advance(points[index-1], current, points[index+1])
			if ip {
				result.InflectionPoints[index] = step.Value
			}
		}

		if sum && nPlus2PointAvailable {
			angles.Add(points[index-1], current, points[index+1], points[index+2])
		}
	}

	acc.chordLength = geometry.Displacement(points[0], points[numberOfPoints-1]).Len()
	acc.inflectionCount = tracker.InflectionCount()
	acc.totalCurvature = angles.TotalCurvature()

	return acc
}

// finalize normalizes the accumulated values and checks their invariants.
// Violations do not stop the other metrics from being computed.
func finalize(acc accumulation, measure Measure, result Result) (Result, error) {
	var violations []Violation

	// DM is also needed by ICM
	var distance Metric
	if measure.Has(DISTANCE_METRIC) || measure.Has(INFLECTION_COUNT_METRIC) {
		dm := acc.pathLength / acc.chordLength
		switch {
		case acc.chordLength == 0.0:
			// closed loop or null polyline: DM stays unset but the call fails
			glog.V(2).Infof("Cannot compute DM, straight line length is null")
			violations = append(violations, Violation{
				Measure: DISTANCE_METRIC,
				Reason:  "null straight line length",
				Value:   Unset,
			})
		case !isFinite(dm):
			glog.V(2).Infof("Cannot compute DM, DM (=%g) is not finite", dm)
			violations = append(violations, Violation{
				Measure: DISTANCE_METRIC,
				Reason:  "distance metric is not finite",
				Value:   dm,
			})
		case dm < 1.0:
			distance = newMetric(dm)
			glog.V(2).Infof("Error while computing the distance metric: DM (=%g) < 1.0", dm)
			violations = append(violations, Violation{
				Measure: DISTANCE_METRIC,
				Reason:  "path length shorter than the straight line",
				Value:   dm,
			})
		default:
			distance = newMetric(dm)
		}
	}

	if measure.Has(DISTANCE_METRIC) {
		result.DistanceMetric = distance
	}

	// ICM follows DM whether or not it was requested, it is only reported
	// when it was
	var inflectionCount Metric
	if dm, ok := distance.Value(); ok {
		inflectionCount = newMetric(float64(acc.inflectionCount) * dm)
	}
	if measure.Has(INFLECTION_COUNT_METRIC) {
		result.InflectionCountMetric = inflectionCount
	}

	if measure.Has(SUM_OF_ANGLES_METRIC) {
		sum := acc.totalCurvature / acc.pathLength
		switch {
		case acc.pathLength > 0.0 && isFinite(sum):
			result.SumOfAnglesMetric = newMetric(sum)
		case acc.pathLength > 0.0 || math.IsNaN(acc.pathLength):
			glog.V(2).Infof("Cannot compute SOAM, SOAM (=%g) is not finite", sum)
			violations = append(violations, Violation{
				Measure: SUM_OF_ANGLES_METRIC,
				Reason:  "sum of angles metric is not finite",
				Value:   sum,
			})
		default:
			glog.V(2).Infof("Cannot compute SOAM, total path length (=%g) <= 0.0", acc.pathLength)
			violations = append(violations, Violation{
				Measure: SUM_OF_ANGLES_METRIC,
				Reason:  "total path length is not positive",
				Value:   acc.pathLength,
			})
		}
	}

	if len(violations) > 0 {
		return Result{}, &ComputationError{Violations: violations, Result: result}
	}
	return result, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
