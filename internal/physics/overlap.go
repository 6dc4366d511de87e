package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"rope-sim/internal/common"
)

// Separate resolves overlap between two circular bodies of radii ra and rb
// by pushing a and b apart along the separation axis by pushA and pushB
// times the overlap respectively. With pushA = pushB = 0.5 the correction is
// symmetric and one pass leaves free bodies at exactly ra+rb apart; a pinned
// body takes push 0 and its partner push 1. It reports whether the bodies
// overlapped. Coincident centers leave the separation direction undefined
// and are treated as no correction needed.
//
// No velocity is imparted: the positional nudge is consumed by the next
// Verlet step as implicit velocity, which is what produces visible bounce.
func Separate(a, b *Particle, ra, rb, pushA, pushB float64) bool {
	delta := r2.Sub(b.Position, a.Position)
	length := r2.Norm(delta)
	if length >= ra+rb {
		return false
	}
	if length < common.Epsilon {
		return true
	}
	axis := r2.Scale(1/length, delta)
	overlap := ra + rb - length
	a.MoveBy(r2.Scale(-overlap*pushA, axis))
	b.MoveBy(r2.Scale(overlap*pushB, axis))
	return true
}
