package simulation

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"rope-sim/internal/common"
	"rope-sim/internal/physics"
)

// Enemy is a particle that seeks a target (the rope's head) at constant
// speed. It stays active until it leaves the arena, after which the driver
// compacts it out of the collection.
type Enemy struct {
	id       string
	Particle *physics.Particle
	active   bool
}

// NewEnemy creates an active enemy at rest at the given position.
func NewEnemy(pos r2.Vec) *Enemy {
	return &Enemy{
		id:       fmt.Sprintf("enemy-%s", uuid.NewString()[:8]),
		Particle: physics.NewParticle(pos),
		active:   true,
	}
}

// ID returns the unique identifier of the enemy.
func (e *Enemy) ID() string {
	return e.id
}

// Active reports whether the enemy is still part of the simulation.
func (e *Enemy) Active() bool {
	return e.active
}

// Position returns the enemy's current position.
func (e *Enemy) Position() r2.Vec {
	return e.Particle.Position
}

// Step advances the enemy by one tick: a velocity-clamped seek displacement
// toward target, then Verlet integration, then the arena lifecycle check.
// The seek is a pure move, independent of the particle's Verlet state: it
// does not enter the implicit velocity, so friction damps only residual
// velocity left over from collision corrections, and an unobstructed enemy
// advances at exactly EnemySpeed. An enemy outside the arena marks itself
// inactive; the driver removes it on the next compaction.
func (e *Enemy) Step(target r2.Vec, arena common.Rect) {
	direction := common.Unit(r2.Sub(target, e.Particle.Position))
	e.Particle.Shift(r2.Scale(EnemySpeed*physics.TimeStep, direction))
	e.Particle.Integrate()

	if !arena.Contains(e.Particle.Position) {
		e.active = false
	}
}

// String returns a string representation for logging.
func (e *Enemy) String() string {
	return fmt.Sprintf("Enemy[%s] Pos: (%.2f, %.2f) Active: %t",
		e.id, e.Particle.Position.X, e.Particle.Position.Y, e.active)
}
