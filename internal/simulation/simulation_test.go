package simulation

import (
	"math/rand"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"rope-sim/internal/common"
	"rope-sim/internal/physics"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestSim builds a deterministic simulation: fixed rng seed, manual
// clock, 800x600 arena at the origin. The rope starts at the arena center
// (400, 300) and spans horizontally to (490, 300).
func newTestSim(t *testing.T) (*Simulation, *fakeClock) {
	t.Helper()
	arena, err := common.NewRect(r2.Vec{}, 800, 600)
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	clk := &fakeClock{t: time.Unix(0, 0)}
	sim, err := New(arena, rand.New(rand.NewSource(1)), clk.now)
	if err != nil {
		t.Fatalf("simulation: %v", err)
	}
	return sim, clk
}

func TestNewRequiresRandomSource(t *testing.T) {
	arena, _ := common.NewRect(r2.Vec{}, 800, 600)
	if _, err := New(arena, nil, nil); err == nil {
		t.Fatalf("expected error for nil random source")
	}
}

func TestPointPickupScoresExactlyOnce(t *testing.T) {
	sim, _ := newTestSim(t)
	head := sim.Rope().Head()

	// On top of a mid-rope particle: picked up in the first substep.
	sim.AddPoint(sim.Rope().Particles[5].Position)

	sim.Step(head)
	if sim.Score() != 1 {
		t.Fatalf("expected score 1 after pickup, got %d", sim.Score())
	}
	if len(sim.Points()) != 0 {
		t.Fatalf("picked-up point should be compacted out, %d points remain", len(sim.Points()))
	}

	// The rope still occupies the same spot; the point must not score again.
	for i := 0; i < 10; i++ {
		sim.Step(head)
	}
	if sim.Score() != 1 {
		t.Fatalf("pickup scored more than once: %d", sim.Score())
	}
}

func TestEnemyOutsideArenaIsCulled(t *testing.T) {
	sim, _ := newTestSim(t)
	head := sim.Rope().Head()

	enemy := sim.AddEnemy(r2.Vec{X: -50, Y: 300})
	sim.Step(head)

	if enemy.Active() {
		t.Fatalf("enemy outside the arena should be inactive after its update")
	}
	if len(sim.Enemies()) != 0 {
		t.Fatalf("inactive enemy should be compacted out, %d remain", len(sim.Enemies()))
	}
}

func TestEnemySeekAdvance(t *testing.T) {
	// An unobstructed enemy entering from the left arena edge advances
	// toward the head by exactly EnemySpeed*TimeStep per tick.
	arena, _ := common.NewRect(r2.Vec{}, 800, 600)
	target := r2.Vec{X: 400, Y: 300}
	enemy := NewEnemy(r2.Vec{X: 0, Y: 300})

	ticks := 100
	for i := 0; i < ticks; i++ {
		enemy.Step(target, arena)
	}
	wantX := float64(ticks) * EnemySpeed * physics.TimeStep
	if !scalar.EqualWithinAbs(enemy.Position().X, wantX, 1e-6) {
		t.Fatalf("expected x %g after %d ticks, got %g", wantX, ticks, enemy.Position().X)
	}
	if !scalar.EqualWithinAbs(enemy.Position().Y, 300, 1e-6) {
		t.Fatalf("enemy drifted off the seek axis: y = %g", enemy.Position().Y)
	}
	if !enemy.Active() {
		t.Fatalf("in-bounds enemy should stay active")
	}
}

func TestCaughtWhenEnemyReachesHead(t *testing.T) {
	sim, _ := newTestSim(t)
	head := sim.Rope().Head()

	sim.AddEnemy(r2.Add(head, r2.Vec{X: 5}))
	sim.Step(head)
	if !sim.Caught() {
		t.Fatalf("enemy overlapping the head should end the game")
	}

	// Terminal state: further steps are no-ops.
	before := sim.Rope().Head()
	sim.Step(r2.Vec{X: 700, Y: 100})
	if sim.Rope().Head() != before {
		t.Fatalf("simulation advanced after being caught")
	}
}

func TestEnemyNearTailDoesNotEndGame(t *testing.T) {
	sim, _ := newTestSim(t)
	head := sim.Rope().Head()
	scoreBefore := sim.Score()

	sim.AddEnemy(r2.Vec{X: 495, Y: 300}) // overlaps the tail, far from the head
	for i := 0; i < 10; i++ {
		sim.Step(head)
	}
	if sim.Caught() {
		t.Fatalf("tail contact must not trigger the caught condition")
	}
	if sim.Score() != scoreBefore {
		t.Fatalf("enemy contact changed the score")
	}
}

func TestSpawnTimers(t *testing.T) {
	sim, clk := newTestSim(t)
	head := sim.Rope().Head()

	sim.Step(head)
	if len(sim.Enemies()) != 0 || len(sim.Points()) != 0 {
		t.Fatalf("nothing should spawn before the intervals elapse")
	}

	clk.advance(PointSpawnInterval)
	sim.Step(head)
	if len(sim.Points()) == 0 {
		t.Fatalf("point should spawn after %s", PointSpawnInterval)
	}
	if len(sim.Enemies()) != 0 {
		t.Fatalf("enemy spawned early")
	}

	clk.advance(EnemySpawnInterval)
	sim.Step(head)
	if len(sim.Enemies()) != 1 {
		t.Fatalf("expected 1 enemy after %s, got %d", EnemySpawnInterval, len(sim.Enemies()))
	}
}

func TestPointSpawnCapped(t *testing.T) {
	sim, clk := newTestSim(t)
	// Park the rope head in a corner so spawned points are rarely collected.
	cursor := r2.Vec{X: 10, Y: 10}

	for i := 0; i < 2*MaxPoints; i++ {
		clk.advance(PointSpawnInterval)
		sim.Step(cursor)
		if len(sim.Points()) > MaxPoints {
			t.Fatalf("active points exceeded cap: %d > %d", len(sim.Points()), MaxPoints)
		}
	}
}

func TestSpawnedEnemiesStartOnArenaEdge(t *testing.T) {
	sim, _ := newTestSim(t)
	arena := sim.Arena()
	for i := 0; i < 50; i++ {
		enemy := sim.AddRandomEnemy()
		pos := enemy.Position()
		if !arena.Contains(pos) {
			t.Fatalf("edge spawn outside arena: %v", pos)
		}
		onEdge := pos.X == arena.Min.X || pos.X == arena.Max.X ||
			pos.Y == arena.Min.Y || pos.Y == arena.Max.Y
		if !onEdge {
			t.Fatalf("enemy spawned off the boundary: %v", pos)
		}
	}
}
