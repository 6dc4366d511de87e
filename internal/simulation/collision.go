package simulation

import (
	"rope-sim/internal/common"
	"rope-sim/internal/physics"
)

// resolveCollisions runs the per-substep resolution pass, immediately after
// the rope's constraint relaxation so that both corrections stay coherent
// within one integration step. It reports the number of points collected and
// whether an enemy has caught the rope's head.
//
// Pairwise checks are brute force; at this entity count a broad phase would
// not pay for itself.
func resolveCollisions(rope *physics.Rope, enemies []*Enemy, points []*Point) (scored int, caught bool) {
	// Caught detection uses pre-correction positions: an active enemy
	// overlapping the head's circle has reached the player. Push-out below
	// would otherwise mask the contact by separating the pair first.
	head := rope.Particles[0]
	for _, enemy := range enemies {
		if !enemy.Active() {
			continue
		}
		if head.Overlaps(enemy.Particle, RopeRadius+EnemyRadius) {
			caught = true
		}
	}

	for _, particle := range rope.Particles {
		for _, enemy := range enemies {
			if !enemy.Active() {
				continue
			}
			// Symmetric half-overlap push. The head takes its half like any
			// other particle; the next rope update re-pins it, so against
			// the head an enemy ends up absorbing the full correction over
			// successive substeps.
			physics.Separate(particle, enemy.Particle, RopeRadius, EnemyRadius, 0.5, 0.5)
		}

		for _, point := range points {
			if !point.Active() {
				continue
			}
			if common.Distance(point.Position, particle.Position) < PickupRadius+PointRadius {
				point.active = false
				scored++
			}
		}
	}

	return scored, caught
}

// resolveEnemyOverlap separates every distinct pair of active enemies by a
// symmetric half-overlap push: plain circle packing, no mass asymmetry.
func resolveEnemyOverlap(enemies []*Enemy) {
	for i := 0; i < len(enemies); i++ {
		if !enemies[i].Active() {
			continue
		}
		for j := i + 1; j < len(enemies); j++ {
			if !enemies[j].Active() {
				continue
			}
			physics.Separate(enemies[i].Particle, enemies[j].Particle, EnemyRadius, EnemyRadius, 0.5, 0.5)
		}
	}
}
