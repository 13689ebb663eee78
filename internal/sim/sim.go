package sim

// Simulation composes a grid, an entity collection, and a rule engine into
// a stepping loop, and keeps the running cell counts.
type Simulation struct {
	grid     *Grid
	entities []*Entity
	engine   *Engine

	dayCount   int
	nightCount int
	tick       uint64
}

// New creates the classic duel: one night orb in the day half and one day
// orb in the night half, on a freshly split w×h grid.
func New(w, h int, seed int64) *Simulation {
	entities := []*Entity{
		NewEntity(w/2, h/4, Night),
		NewEntity(3*w/4, 3*h/4, Day),
	}
	return NewWithEntities(NewGrid(w, h), entities, seed)
}

// NewWithEntities creates a simulation over an existing grid and entity
// set. The entity slice order is the processing order for every step and
// must stay fixed for reproducibility. Entity positions must be in bounds.
func NewWithEntities(g *Grid, entities []*Entity, seed int64) *Simulation {
	s := &Simulation{
		grid:     g,
		entities: entities,
		engine:   NewEngine(seed),
	}
	s.dayCount, s.nightCount = g.CountStates()
	return s
}

// Step runs one iteration: move every entity in order, apply the
// accumulated toggles, recount cells. On a retry-limit failure the toggles
// gathered before the failure are still applied and the counts refreshed,
// but the tick does not advance and the error is surfaced.
func (s *Simulation) Step() error {
	toggles, err := s.engine.BatchMove(s.entities, s.grid)
	ApplyToggles(s.grid, toggles)
	s.dayCount, s.nightCount = s.grid.CountStates()
	if err != nil {
		return err
	}
	s.tick++
	return nil
}

// Counts returns the current day and night cell counts.
func (s *Simulation) Counts() (day, night int) {
	return s.dayCount, s.nightCount
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Width returns the grid width.
func (s *Simulation) Width() int {
	return s.grid.W
}

// Height returns the grid height.
func (s *Simulation) Height() int {
	return s.grid.H
}

// Grid exposes the underlying grid for read-only consumers.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Entities returns read-only views of the entities in processing order.
func (s *Simulation) Entities() []EntityView {
	views := make([]EntityView, len(s.entities))
	for i, e := range s.entities {
		views[i] = e.View()
	}
	return views
}

// Heading returns the shared heading for the given entity type.
func (s *Simulation) Heading(t CellState) Direction {
	return s.engine.Heading(t)
}
