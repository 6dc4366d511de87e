package simulation

import "time"

// Gameplay parameters. Radii are in world units (screen pixels); intervals
// are wall-clock, queried against the driver's clock.
const (
	RopeRadius   = 7.0  // collision radius of each rope particle
	EnemyRadius  = 10.0 // collision radius of an enemy
	PointRadius  = 5.0  // radius of a collectible point
	PickupRadius = 10.0 // rope-side radius for point pickup

	EnemySpeed = 7.0 // enemy seek speed, world units per second
	LerpFactor = 0.5 // cursor smoothing applied to the rope-head target

	MaxPoints = 20 // cap on concurrently active points

	EnemySpawnInterval = 2 * time.Second
	PointSpawnInterval = 1 * time.Second
)
