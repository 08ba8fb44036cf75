package tortuosity

import "encoding/json"

// Unset is the value reported by Metric.Float64 for a metric that was not
// requested or could not be computed. None of the metrics can be negative.
const Unset = -1.0

// Metric is an optional scalar metric
type Metric struct {
	value float64
	valid bool
}

func newMetric(value float64) Metric {
	return Metric{value: value, valid: true}
}

// Value returns the metric and whether it was computed
func (m Metric) Value() (float64, bool) {
	return m.value, m.valid
}

// Valid reports whether the metric was computed. An unset metric is not
// an error by itself, the measure may not have been requested.
func (m Metric) Valid() bool {
	return m.valid
}

// Float64 returns the metric, or Unset
func (m Metric) Float64() float64 {
	if !m.valid {
		return Unset
	}
	return m.value
}

// MarshalJSON writes null for an unset metric
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

// Result holds the metrics of one polyline
type Result struct {
	// DistanceMetric is the path length over the chord length
	DistanceMetric Metric `json:"distance_metric"`
	// InflectionCountMetric is the number of bending directions times DistanceMetric
	InflectionCountMetric Metric `json:"inflection_count_metric"`
	// SumOfAnglesMetric is the accumulated curvature and torsion over the path length
	SumOfAnglesMetric Metric `json:"sum_of_angles_metric"`
	// InflectionPoints holds |ΔN|² per input point, nil unless requested
	InflectionPoints []float64 `json:"inflection_points,omitempty"`
}

// Metric returns the scalar metric selected by a unique measure
func (r Result) Metric(m Measure) Metric {
	switch m {
	case DISTANCE_METRIC:
		return r.DistanceMetric
	case INFLECTION_COUNT_METRIC:
		return r.InflectionCountMetric
	case SUM_OF_ANGLES_METRIC:
		return r.SumOfAnglesMetric
	default:
		return Metric{}
	}
}

// InflectionPointValue returns the inflection value at point i, or Unset if
// the series was not computed or i is out of range
func (r Result) InflectionPointValue(i int) float64 {
	if i < 0 || i >= len(r.InflectionPoints) {
		return Unset
	}
	return r.InflectionPoints[i]
}
