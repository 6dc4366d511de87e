package visualization

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"rope-sim/internal/simulation"
)

const (
	ropeThickness  = 2.0   // line width of rope segments
	headRingWidth  = 2.0   // line width of the ring drawn around the head
	headRingRadius = 200.0 // radius of the ring drawn around the head
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	ropeColor       = color.RGBA{255, 255, 255, 255}
	enemyColor      = color.RGBA{178, 204, 255, 255} // pale blue
	pointColor      = color.RGBA{255, 204, 0, 255}   // gold
	arenaColor      = color.RGBA{90, 90, 110, 255}
	ringColor       = color.RGBA{255, 255, 255, 128} // translucent white
)

// Renderer implements ebiten.Game over a Simulation. The simulation runs in
// screen coordinates, so drawing needs no world transform; Update advances
// the simulation once per frame in lockstep with ebiten's tick.
type Renderer struct {
	sim *simulation.Simulation

	screenWidth  int
	screenHeight int
}

// NewRenderer creates a renderer for the given simulation and screen size.
func NewRenderer(sim *simulation.Simulation, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		sim:          sim,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Update is called every tick. It feeds the cursor position to the
// simulation and ends the game loop once the rope's head has been caught.
func (r *Renderer) Update() error {
	cx, cy := ebiten.CursorPosition()
	r.sim.Step(r2.Vec{X: float64(cx), Y: float64(cy)})

	if r.sim.Caught() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current simulation state.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	arena := r.sim.Arena()
	vector.StrokeRect(screen,
		float32(arena.Min.X), float32(arena.Min.Y),
		float32(arena.Width()), float32(arena.Height()),
		1, arenaColor, true)

	for _, point := range r.sim.Points() {
		if !point.Active() {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(point.Position.X), float32(point.Position.Y),
			float32(simulation.PointRadius), pointColor, true)
	}

	for _, enemy := range r.sim.Enemies() {
		if !enemy.Active() {
			continue
		}
		pos := enemy.Position()
		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y),
			float32(simulation.EnemyRadius), enemyColor, true)
	}

	r.drawRope(screen)
	r.drawHUD(screen)
}

// drawRope draws the chain segments plus end caps on the head and tail.
func (r *Renderer) drawRope(screen *ebiten.Image) {
	particles := r.sim.Rope().Particles
	for i := 0; i < len(particles)-1; i++ {
		a, b := particles[i].Position, particles[i+1].Position
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			ropeThickness, ropeColor, true)
	}

	head := particles[0].Position
	tail := particles[len(particles)-1].Position
	vector.DrawFilledCircle(screen, float32(head.X), float32(head.Y),
		float32(simulation.RopeRadius), ropeColor, true)
	vector.DrawFilledCircle(screen, float32(tail.X), float32(tail.Y),
		float32(simulation.RopeRadius), ropeColor, true)

	vector.StrokeCircle(screen, float32(head.X), float32(head.Y),
		headRingRadius, headRingWidth, ringColor, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image) {
	msg := fmt.Sprintf("Score: %d", r.sim.Score())
	if r.sim.Caught() {
		msg += "  CAUGHT"
	}
	ebitenutil.DebugPrintAt(screen, msg, 20, 20)
}

// Layout implements ebiten.Game.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenWidth, r.screenHeight
}
