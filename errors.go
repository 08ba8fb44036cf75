package tortuosity

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrTooFewPoints is returned when the polyline has less than 2 points
var ErrTooFewPoints = errors.New("tortuosity: input has less than 2 points")

// Violation is an invariant broken while finalizing the metrics
type Violation struct {
	Measure Measure
	Reason  string
	Value   float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (=%g)", v.Measure, v.Reason, v.Value)
}

// ComputationError is returned after a full traversal when a metric breaks
// its invariant. Result holds every metric computed before finalization
// failed.
type ComputationError struct {
	Violations []Violation
	Result     Result
}

func (e *ComputationError) Error() string {
	reasons := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		reasons[i] = v.String()
	}
	return "tortuosity: problem while computing tortuosity: " + strings.Join(reasons, "; ")
}
