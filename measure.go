package tortuosity

import (
	"strings"

	"github.com/pkg/errors"
)

// Measure selects the metrics computed by Compute. Values can be combined
// with a bitwise OR.
type Measure uint8

const (
	DISTANCE_METRIC Measure = 1 << iota
	INFLECTION_COUNT_METRIC
	INFLECTION_POINTS
	SUM_OF_ANGLES_METRIC

	ALL_METRICS = DISTANCE_METRIC | INFLECTION_COUNT_METRIC | INFLECTION_POINTS | SUM_OF_ANGLES_METRIC
)

var measureNames = []struct {
	measure Measure
	name    string
	alias   string
}{
	{DISTANCE_METRIC, "distance", "dm"},
	{INFLECTION_COUNT_METRIC, "inflection-count", "icm"},
	{INFLECTION_POINTS, "inflection-points", "ip"},
	{SUM_OF_ANGLES_METRIC, "sum-of-angles", "soam"},
}

// Has reports whether every flag of other is set in m
func (m Measure) Has(other Measure) bool {
	return other != 0 && m&other == other
}

// IsUnique reports whether m names exactly one scalar metric
func (m Measure) IsUnique() bool {
	return m == DISTANCE_METRIC || m == INFLECTION_COUNT_METRIC || m == SUM_OF_ANGLES_METRIC
}

func (m Measure) String() string {
	if m == 0 {
		return "none"
	}
	if m == ALL_METRICS {
		return "all"
	}

	var names []string
	for _, n := range measureNames {
		if m.Has(n.measure) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseMeasure reads a comma separated list of metric names, as printed by
// Measure.String. Short aliases (dm, icm, ip, soam) are accepted.
func ParseMeasure(s string) (Measure, error) {
	var m Measure
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		if field == "all" {
			m |= ALL_METRICS
			continue
		}

		found := false
		for _, n := range measureNames {
			if field == n.name || field == n.alias {
				m |= n.measure
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Errorf("unknown measure %q", field)
		}
	}

	if m == 0 {
		return 0, errors.New("no measure selected")
	}
	return m, nil
}
