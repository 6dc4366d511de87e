package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"rope-sim/internal/common"
)

// Rope is an ordered chain of particles under soft distance constraints.
// The head particle (index 0) is a kinematic driver: its position is
// force-set to an external target every update and it is never integrated.
// All other particles are free Verlet bodies.
type Rope struct {
	Particles  []*Particle
	restLength float64
}

// NewRope creates a chain of NumParticles particles laid out in a horizontal
// line starting at start, with SegmentLength spacing and zero velocity.
func NewRope(start r2.Vec) *Rope {
	particles := make([]*Particle, NumParticles)
	for i := range particles {
		particles[i] = NewParticle(r2.Add(start, r2.Vec{X: float64(i) * SegmentLength}))
	}
	return &Rope{Particles: particles, restLength: SegmentLength}
}

// Head returns the position of the pinned head particle.
func (r *Rope) Head() r2.Vec {
	return r.Particles[0].Position
}

// RestLength returns the target distance between adjacent particles.
func (r *Rope) RestLength() float64 {
	return r.restLength
}

// Update runs one physics substep of the chain: pin the head to target,
// relax the segment-length constraints, then integrate the free particles.
//
// Relaxation is Gauss-Seidel style: pairs are processed front to back each
// iteration, so a correction propagates along the chain within a single
// iteration. Each pair splits its length error symmetrically, except that
// the head never moves. The 1/Substeps factor keeps a single substep from
// applying a full frame's worth of correction.
func (r *Rope) Update(target r2.Vec) {
	r.Particles[0].Position = target
	r.relax()
	for _, p := range r.Particles[1:] {
		p.Integrate()
	}
}

// relax runs ConstraintIterations passes of pairwise length correction with
// the head held fixed.
func (r *Rope) relax() {
	for iter := 0; iter < ConstraintIterations; iter++ {
		for i := 0; i < len(r.Particles)-1; i++ {
			a, b := r.Particles[i], r.Particles[i+1]
			delta := r2.Sub(b.Position, a.Position)
			length := r2.Norm(delta)
			if length < common.Epsilon {
				// Coincident particles: the correction direction is
				// undefined, so leave the pair for a later iteration to
				// pull apart via its neighbors.
				continue
			}
			offset := r2.Scale((length-r.restLength)/length*0.5/Substeps, delta)
			if i != 0 {
				a.MoveBy(offset)
			}
			b.MoveBy(r2.Scale(-1, offset))
		}
	}
}
