package packing

import "math"

// Distance returns the Euclidean distance between two gene centers, using
// math.Hypot for overflow-safe accumulation.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
