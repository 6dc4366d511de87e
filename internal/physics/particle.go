package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"rope-sim/internal/common"
)

// Particle is a Verlet-integrated point mass: velocity is not stored but
// inferred as Position - OldPosition. Position-based state keeps constraint
// systems stable, since constraints can correct positions directly and the
// correction is consumed as implicit velocity by the next integration step.
type Particle struct {
	Position    r2.Vec
	OldPosition r2.Vec
	Friction    float64 // fraction of implicit velocity retained per step, in (0,1]
}

// NewParticle creates a particle at rest at the given position.
func NewParticle(pos r2.Vec) *Particle {
	return &Particle{
		Position:    pos,
		OldPosition: pos,
		Friction:    Friction,
	}
}

// Velocity returns the implicit per-step velocity.
func (p *Particle) Velocity() r2.Vec {
	return r2.Sub(p.Position, p.OldPosition)
}

// Integrate advances the particle by one Verlet step: the implicit velocity
// is damped by Friction and carried forward. No force term is applied; all
// external influence arrives as positional displacement before this call.
func (p *Particle) Integrate() {
	velocity := r2.Scale(p.Friction, p.Velocity())
	p.OldPosition = p.Position
	p.Position = r2.Add(p.Position, velocity)
}

// MoveBy displaces the particle without touching OldPosition, so the
// displacement also enters the implicit velocity of the next step.
func (p *Particle) MoveBy(delta r2.Vec) {
	p.Position = r2.Add(p.Position, delta)
}

// Shift displaces the particle and its previous position together: the
// implicit velocity is unchanged, so the displacement is a pure move rather
// than an impulse.
func (p *Particle) Shift(delta r2.Vec) {
	p.Position = r2.Add(p.Position, delta)
	p.OldPosition = r2.Add(p.OldPosition, delta)
}

// Overlaps reports whether two circular bodies centered on the particles
// overlap, given the sum of their radii.
func (p *Particle) Overlaps(other *Particle, radiusSum float64) bool {
	return common.Distance(p.Position, other.Position) < radiusSum
}
