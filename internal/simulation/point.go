package simulation

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a stationary collectible. It has no per-tick behavior: it exists
// until a rope particle touches it, which deactivates it and scores.
type Point struct {
	id       string
	Position r2.Vec
	active   bool
}

// NewPoint creates an active point at the given position.
func NewPoint(pos r2.Vec) *Point {
	return &Point{
		id:       fmt.Sprintf("point-%s", uuid.NewString()[:8]),
		Position: pos,
		active:   true,
	}
}

// ID returns the unique identifier of the point.
func (p *Point) ID() string {
	return p.id
}

// Active reports whether the point is still collectible.
func (p *Point) Active() bool {
	return p.active
}

// String returns a string representation for logging.
func (p *Point) String() string {
	return fmt.Sprintf("Point[%s] Pos: (%.2f, %.2f) Active: %t",
		p.id, p.Position.X, p.Position.Y, p.active)
}
