package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"rope-sim/internal/common"
	"rope-sim/internal/physics"
)

// Simulation owns all game state and advances it one frame per Step call.
// It is single-threaded by design: every collection is exclusively owned and
// mutated here, in a fixed order (constraint relaxation, then collision
// resolution, then enemy movement, then compaction) that is behavior-bearing
// and must not be rearranged.
type Simulation struct {
	arena   common.Rect
	rope    *physics.Rope
	enemies []*Enemy
	points  []*Point

	score  int
	caught bool

	rng *rand.Rand
	now func() time.Time

	lastEnemySpawn time.Time
	lastPointSpawn time.Time
}

// New creates a simulation with the rope laid out from the arena's center.
// rng drives spawn placement; now supplies the clock for the spawn interval
// timers and may be overridden in tests.
func New(arena common.Rect, rng *rand.Rand, now func() time.Time) (*Simulation, error) {
	if rng == nil {
		return nil, fmt.Errorf("simulation requires a random source")
	}
	if now == nil {
		now = time.Now
	}
	start := now()
	return &Simulation{
		arena:          arena,
		rope:           physics.NewRope(arena.Center()),
		rng:            rng,
		now:            now,
		lastEnemySpawn: start,
		lastPointSpawn: start,
	}, nil
}

// Arena returns the playable bounding rectangle.
func (s *Simulation) Arena() common.Rect { return s.arena }

// Rope returns the player's rope.
func (s *Simulation) Rope() *physics.Rope { return s.rope }

// Enemies returns the active enemy collection.
func (s *Simulation) Enemies() []*Enemy { return s.enemies }

// Points returns the active point collection.
func (s *Simulation) Points() []*Point { return s.points }

// Score returns the number of points collected so far.
func (s *Simulation) Score() int { return s.score }

// Caught reports whether an enemy has reached the rope's head. Once set the
// simulation is terminal and Step becomes a no-op.
func (s *Simulation) Caught() bool { return s.caught }

// AddEnemy inserts an enemy at the given position.
func (s *Simulation) AddEnemy(pos r2.Vec) *Enemy {
	enemy := NewEnemy(pos)
	s.enemies = append(s.enemies, enemy)
	return enemy
}

// AddRandomEnemy spawns an enemy on a random point of the arena boundary.
func (s *Simulation) AddRandomEnemy() *Enemy {
	return s.AddEnemy(s.arena.RandomOnEdge(s.rng))
}

// AddPoint inserts a collectible point at the given position.
func (s *Simulation) AddPoint(pos r2.Vec) *Point {
	point := NewPoint(pos)
	s.points = append(s.points, point)
	return point
}

// AddRandomPoint spawns a point at a uniformly random arena position.
func (s *Simulation) AddRandomPoint() *Point {
	return s.AddPoint(s.arena.RandomInside(s.rng))
}

// Step advances the simulation by one frame.
//
// The head target is the cursor smoothed by LerpFactor. The physics then
// runs Substeps times per frame: rope constraint relaxation and integration,
// the rope/enemy/point resolution pass, and enemy-enemy separation. After
// the substeps the spawn timers fire, enemies seek the (possibly moved) head
// and cull themselves at the arena boundary, and inactive entities are
// compacted out.
func (s *Simulation) Step(cursor r2.Vec) {
	if s.caught {
		return
	}

	target := common.Lerp(s.rope.Head(), cursor, LerpFactor)

	for sub := 0; sub < physics.Substeps; sub++ {
		s.rope.Update(target)
		scored, caught := resolveCollisions(s.rope, s.enemies, s.points)
		s.score += scored
		if caught {
			s.caught = true
		}
		resolveEnemyOverlap(s.enemies)
	}

	s.spawn()

	head := s.rope.Head()
	for _, enemy := range s.enemies {
		enemy.Step(head, s.arena)
	}

	s.compact()
}

// spawn fires the interval timers: one enemy every EnemySpawnInterval on the
// arena edge, one point every PointSpawnInterval while under MaxPoints.
func (s *Simulation) spawn() {
	now := s.now()
	if now.Sub(s.lastEnemySpawn) >= EnemySpawnInterval {
		s.AddRandomEnemy()
		s.lastEnemySpawn = now
	}
	if now.Sub(s.lastPointSpawn) >= PointSpawnInterval && len(s.points) < MaxPoints {
		s.AddRandomPoint()
		s.lastPointSpawn = now
	}
}

// compact removes inactive points and enemies, preserving order.
func (s *Simulation) compact() {
	points := s.points[:0]
	for _, p := range s.points {
		if p.Active() {
			points = append(points, p)
		}
	}
	s.points = points

	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Active() {
			enemies = append(enemies, e)
		}
	}
	s.enemies = enemies
}

// String returns a one-line state summary for logging.
func (s *Simulation) String() string {
	return fmt.Sprintf("Simulation[score=%d enemies=%d points=%d caught=%t]",
		s.score, len(s.enemies), len(s.points), s.caught)
}
