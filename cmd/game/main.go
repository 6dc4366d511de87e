package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"rope-sim/internal/common"
	"rope-sim/internal/simulation"
	"rope-sim/internal/visualization"
)

func main() {
	// --- Parameters ---
	screenWidth := 1024
	screenHeight := 768
	arenaWidth := 800.0
	arenaHeight := 600.0

	arena, err := common.CenteredRect(float64(screenWidth), float64(screenHeight), arenaWidth, arenaHeight)
	if err != nil {
		log.Fatalf("Error creating arena: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sim, err := simulation.New(arena, rng, time.Now)
	if err != nil {
		log.Fatalf("Error creating simulation: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Rope Simulation")
	if err := ebiten.RunGame(visualization.NewRenderer(sim, screenWidth, screenHeight)); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Final state: %s\n", sim)
	fmt.Printf("Game over. Final score: %d\n", sim.Score())
}
