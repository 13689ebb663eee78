package scenario

import (
	"math/rand"

	"github.com/pkoval/daynight/internal/sim"
)

// Built-in scenarios. Entity order within a scenario fixes the processing
// order of every step, so placements are listed deliberately.

func init() {
	Register("classic", "Classic Duel", classic)
	Register("quad", "Quad Duel", quad)
	Register("swarm", "Swarm", swarm)
}

// classic is the canonical setup: one night orb in the day half, one day
// orb in the night half.
func classic(w, h int, seed int64) *sim.Simulation {
	return sim.New(w, h, seed)
}

// quad doubles each side: two orbs per type, mirrored across the center.
func quad(w, h int, seed int64) *sim.Simulation {
	entities := []*sim.Entity{
		sim.NewEntity(w/4, h/4, sim.Night),
		sim.NewEntity(w/4, 3*h/4, sim.Night),
		sim.NewEntity(3*w/4, h/4, sim.Day),
		sim.NewEntity(3*w/4, 3*h/4, sim.Day),
	}
	return sim.NewWithEntities(sim.NewGrid(w, h), entities, seed)
}

// swarmSize is the number of orbs per side in the swarm scenario.
const swarmSize = 4

// swarm scatters several orbs per side over that side's starting half.
// Placement uses its own RNG derived from the seed so the engine's
// fallback stream stays independent of entity count.
func swarm(w, h int, seed int64) *sim.Simulation {
	rng := rand.New(rand.NewSource(seed))
	nightStart := (w + 1) / 2

	// A half with no columns gets no orbs, so a degenerate grid
	// still produces a valid (if lopsided or empty) simulation.
	entities := make([]*sim.Entity, 0, 2*swarmSize)
	if h > 0 && nightStart > 0 {
		// Night orbs roam the day half and vice versa.
		for i := 0; i < swarmSize; i++ {
			entities = append(entities, sim.NewEntity(rng.Intn(nightStart), rng.Intn(h), sim.Night))
		}
	}
	if h > 0 && w > nightStart {
		for i := 0; i < swarmSize; i++ {
			entities = append(entities, sim.NewEntity(nightStart+rng.Intn(w-nightStart), rng.Intn(h), sim.Day))
		}
	}
	return sim.NewWithEntities(sim.NewGrid(w, h), entities, seed)
}
