package tortuosity

import "testing"

func TestMeasure_Has(t *testing.T) {
	m := DISTANCE_METRIC | SUM_OF_ANGLES_METRIC

	if !m.Has(DISTANCE_METRIC) {
		t.Error("Expected DISTANCE_METRIC to be set")
	}
	if !m.Has(SUM_OF_ANGLES_METRIC) {
		t.Error("Expected SUM_OF_ANGLES_METRIC to be set")
	}
	if m.Has(INFLECTION_COUNT_METRIC) {
		t.Error("Expected INFLECTION_COUNT_METRIC not to be set")
	}
	if m.Has(INFLECTION_POINTS) {
		t.Error("Expected INFLECTION_POINTS not to be set")
	}
	if m.Has(0) {
		t.Error("Expected the empty measure never to match")
	}
	if !ALL_METRICS.Has(m) {
		t.Error("Expected ALL_METRICS to contain every combination")
	}
}

func TestMeasure_IsUnique(t *testing.T) {
	tests := []struct {
		measure  Measure
		expected bool
	}{
		{DISTANCE_METRIC, true},
		{INFLECTION_COUNT_METRIC, true},
		{SUM_OF_ANGLES_METRIC, true},
		{INFLECTION_POINTS, false},
		{DISTANCE_METRIC | SUM_OF_ANGLES_METRIC, false},
		{ALL_METRICS, false},
		{0, false},
	}

	for _, tt := range tests {
		if got := tt.measure.IsUnique(); got != tt.expected {
			t.Errorf("%v.IsUnique() = %v, expected %v", tt.measure, got, tt.expected)
		}
	}
}

func TestMeasure_String(t *testing.T) {
	tests := []struct {
		measure  Measure
		expected string
	}{
		{0, "none"},
		{ALL_METRICS, "all"},
		{DISTANCE_METRIC, "distance"},
		{INFLECTION_POINTS | DISTANCE_METRIC, "distance,inflection-points"},
		{SUM_OF_ANGLES_METRIC | INFLECTION_COUNT_METRIC, "inflection-count,sum-of-angles"},
	}

	for _, tt := range tests {
		if got := tt.measure.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestParseMeasure(t *testing.T) {
	tests := []struct {
		input    string
		expected Measure
	}{
		{"all", ALL_METRICS},
		{"ALL", ALL_METRICS},
		{"dm", DISTANCE_METRIC},
		{"distance, soam", DISTANCE_METRIC | SUM_OF_ANGLES_METRIC},
		{"icm,ip", INFLECTION_COUNT_METRIC | INFLECTION_POINTS},
		{"inflection-count,inflection-points,sum-of-angles,distance", ALL_METRICS},
		{"dm,,dm", DISTANCE_METRIC},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMeasure(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	t.Run("round trip", func(t *testing.T) {
		for m := Measure(1); m <= ALL_METRICS; m++ {
			got, err := ParseMeasure(m.String())
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", m, err)
			}
			if got != m {
				t.Errorf("Expected %v, got %v", m, got)
			}
		}
	})

	for _, input := range []string{"", " , ", "curvature", "dm,torsion"} {
		if _, err := ParseMeasure(input); err == nil {
			t.Errorf("Expected an error for %q", input)
		}
	}
}
