package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/akmonengine/tortuosity"
	"github.com/pkg/errors"
)

type report struct {
	Measure string `json:"measure"`
	Points  int    `json:"points"`
	tortuosity.Result
}

func newReport(measure tortuosity.Measure, points int, result tortuosity.Result) report {
	return report{
		Measure: measure.String(),
		Points:  points,
		Result:  result,
	}
}

type writeFunc func(w io.Writer, r report) error

func reportWriter(name string) (writeFunc, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return writeJSON, nil
	case "text":
		return writeText, nil
	default:
		return nil, errors.Errorf("unknown output format %q", name)
	}
}

func writeJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeText(w io.Writer, r report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "measure: %s\npoints: %d\n", r.Measure, r.Points)

	metrics := []struct {
		name   string
		metric tortuosity.Metric
	}{
		{"distance metric", r.DistanceMetric},
		{"inflection count metric", r.InflectionCountMetric},
		{"sum of angles metric", r.SumOfAnglesMetric},
	}
	for _, m := range metrics {
		if v, ok := m.metric.Value(); ok {
			fmt.Fprintf(&b, "%s: %g\n", m.name, v)
		}
	}
	if r.InflectionPoints != nil {
		b.WriteString("inflection points:\n")
		for i, v := range r.InflectionPoints {
			fmt.Fprintf(&b, "  %d: %g\n", i, v)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
