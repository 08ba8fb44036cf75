package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSafeNormalize(t *testing.T) {
	t.Run("regular vector becomes unit length", func(t *testing.T) {
		v := Vector{3, 0, 4}
		norm := SafeNormalize(&v)

		if norm != 5.0 {
			t.Errorf("Expected returned norm 5, got %v", norm)
		}
		if !mgl64.FloatEqual(v.Len(), 1.0) {
			t.Errorf("Expected unit vector, got length %v", v.Len())
		}
		if !v.ApproxEqual(Vector{0.6, 0, 0.8}) {
			t.Errorf("Expected {0.6, 0, 0.8}, got %v", v)
		}
	})

	t.Run("zero vector is left unchanged", func(t *testing.T) {
		v := Vector{}
		norm := SafeNormalize(&v)

		if norm != 0.0 {
			t.Errorf("Expected returned norm 0, got %v", norm)
		}
		if v != (Vector{}) {
			t.Errorf("Expected zero vector to stay zero, got %v", v)
		}
		for i := range v {
			if math.IsNaN(v[i]) {
				t.Fatalf("Component %d is NaN", i)
			}
		}
	})

	t.Run("tiny vector reports its original norm", func(t *testing.T) {
		v := Vector{1e-9, 0, 0}
		norm := SafeNormalize(&v)

		// the vector is rescaled, but the caller can still see it was degenerate
		if norm >= 1e-6 {
			t.Errorf("Expected norm below epsilon, got %v", norm)
		}
		if !mgl64.FloatEqual(v.Len(), 1.0) {
			t.Errorf("Expected rescaled unit vector, got length %v", v.Len())
		}
	})
}

func TestSafeAcos(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"one", 1.0, 0.0},
		{"minus one", -1.0, math.Pi},
		{"zero", 0.0, math.Pi / 2},
		{"drift above one", 1.0000001, 0.0},
		{"drift below minus one", -1.0000001, math.Pi},
		{"far outside domain", 42.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeAcos(tt.x)
			if math.IsNaN(got) {
				t.Fatalf("SafeAcos(%v) returned NaN", tt.x)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("SafeAcos(%v) = %v, expected %v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestSafeAcos_NormalizedParallelVectors(t *testing.T) {
	// normalization error pushes the dot product of parallel vectors past 1
	a := Vector{0.1, 0.2, 0.3}
	b := Vector{0.3, 0.6, 0.9}
	SafeNormalize(&a)
	SafeNormalize(&b)

	angle := SafeAcos(a.Dot(b))
	if math.IsNaN(angle) {
		t.Fatal("Expected a finite angle between parallel vectors")
	}
	if angle > 1e-7 {
		t.Errorf("Expected angle close to 0, got %v", angle)
	}
}

func TestDisplacement(t *testing.T) {
	d := Displacement(Point{1, 2, 3}, Point{4, 6, 3})
	if d != (Vector{3, 4, 0}) {
		t.Errorf("Expected {3, 4, 0}, got %v", d)
	}
}
