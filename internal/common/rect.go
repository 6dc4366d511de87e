package common

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis-aligned rectangle, used as the arena boundary for spawn
// placement and lifecycle culling.
type Rect struct {
	Min, Max r2.Vec
}

// NewRect creates a rectangle from its minimum corner and dimensions.
func NewRect(min r2.Vec, width, height float64) (Rect, error) {
	if width <= 0 || height <= 0 {
		return Rect{}, fmt.Errorf("rect dimensions must be positive, got %gx%g", width, height)
	}
	return Rect{Min: min, Max: r2.Add(min, r2.Vec{X: width, Y: height})}, nil
}

// CenteredRect creates a width x height rectangle centered inside an outer
// region of the given size (e.g. the arena centered in the viewport).
func CenteredRect(outerWidth, outerHeight, width, height float64) (Rect, error) {
	min := r2.Vec{X: (outerWidth - width) / 2, Y: (outerHeight - height) / 2}
	return NewRect(min, width, height)
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the center point of the rectangle.
func (r Rect) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(r.Min, r.Max))
}

// Contains reports whether p lies inside the rectangle. The boundary is
// inclusive so that entities spawned on an edge are not culled immediately.
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// RandomInside returns a uniformly random point in the rectangle's interior.
func (r Rect) RandomInside(rng *rand.Rand) r2.Vec {
	return r2.Vec{
		X: r.Min.X + rng.Float64()*r.Width(),
		Y: r.Min.Y + rng.Float64()*r.Height(),
	}
}

// RandomOnEdge returns a uniformly random point on one of the rectangle's
// four edges, each edge chosen with equal probability.
func (r Rect) RandomOnEdge(rng *rand.Rand) r2.Vec {
	switch rng.Intn(4) {
	case 0: // top
		return r2.Vec{X: r.Min.X + rng.Float64()*r.Width(), Y: r.Min.Y}
	case 1: // bottom
		return r2.Vec{X: r.Min.X + rng.Float64()*r.Width(), Y: r.Max.Y}
	case 2: // left
		return r2.Vec{X: r.Min.X, Y: r.Min.Y + rng.Float64()*r.Height()}
	default: // right
		return r2.Vec{X: r.Max.X, Y: r.Min.Y + rng.Float64()*r.Height()}
	}
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("Rect[%.1f,%.1f - %.1f,%.1f]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
