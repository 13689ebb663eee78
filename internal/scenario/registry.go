// Package scenario provides a registry of named simulation setups.
// Scenarios register themselves in init() functions, allowing the driver
// layers to discover and instantiate them without hardcoded dependencies.
package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkoval/daynight/internal/sim"
)

// Factory builds a simulation on a w×h grid with the given RNG seed.
type Factory func(w, h int, seed int64) *sim.Simulation

// Info contains metadata about a registered scenario.
type Info struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
// Returns an error if the scenario ID is not registered.
func Create(id string, w, h int, seed int64) (*sim.Simulation, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scenario: unknown scenario %q", id)
	}

	return f(w, h, seed), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
