package packing

import "math"

// PlantType tags a gene's variety category (e.g. a species or SKU class).
type PlantType string

// Point is an immutable gene: a disc center with a radius and variety
// identity. Callers never mutate a Point in place; operators that need a
// different position construct a new one.
type Point struct {
	X, Y        float64
	Radius      float64
	TypeTag     PlantType
	VarietyID   int32
	VarietyName string
}

// NewPoint validates and constructs a Point. Coordinates must be finite and
// radius must be strictly positive.
func NewPoint(x, y, radius float64, tag PlantType, varietyID int32, varietyName string) (Point, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, &InvalidPointError{Reason: "coordinates must be finite"}
	}
	if radius <= 0 {
		return Point{}, &InvalidPointError{Reason: "radius must be strictly positive"}
	}
	return Point{X: x, Y: y, Radius: radius, TypeTag: tag, VarietyID: varietyID, VarietyName: varietyName}, nil
}

// withPosition returns a copy of p relocated to (x, y); all other fields are
// preserved. Used by mutation to replace a gene without touching the caller's
// original slice element.
func (p Point) withPosition(x, y float64) Point {
	p.X, p.Y = x, y
	return p
}
