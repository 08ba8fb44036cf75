package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/tortuosity"
	"github.com/akmonengine/tortuosity/geometry"
)

// Compares the metrics of a few synthetic centerlines
func main() {
	curves := []struct {
		name   string
		points []geometry.Point
	}{
		{"straight", line(20)},
		{"arc", helix(5, 0, 0.1, 20)},
		{"helix", helix(5, 1, 0.3, 40)},
		{"sine", sine(0.2, 4*math.Pi)},
	}

	fmt.Printf("%-10s %8s %8s %8s\n", "curve", "DM", "ICM", "SOAM")
	for _, c := range curves {
		result, err := tortuosity.Compute(c.points, tortuosity.DefaultOptions())
		if err != nil {
			fmt.Printf("%-10s error: %v\n", c.name, err)
			continue
		}

		fmt.Printf("%-10s %8.4f %8.4f %8.4f\n", c.name,
			result.DistanceMetric.Float64(),
			result.InflectionCountMetric.Float64(),
			result.SumOfAnglesMetric.Float64())
	}
}

func line(count int) []geometry.Point {
	points := make([]geometry.Point, count)
	for i := range points {
		points[i] = geometry.Point{float64(i), 0, 0}
	}
	return points
}

func helix(radius, pitch, step float64, count int) []geometry.Point {
	points := make([]geometry.Point, count)
	for i := range points {
		angle := float64(i) * step
		points[i] = geometry.Point{radius * math.Cos(angle), radius * math.Sin(angle), pitch * angle}
	}
	return points
}

func sine(step, length float64) []geometry.Point {
	var points []geometry.Point
	for x := 0.0; x <= length; x += step {
		points = append(points, geometry.Point{x, math.Sin(x), 0})
	}
	return points
}
