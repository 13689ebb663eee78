package sim

// Snapshot is a full copy of the simulation state in primitive types,
// suitable for comparison in tests and for state dumps.
type Snapshot struct {
	Tick       uint64
	Width      int
	Height     int
	DayCount   int
	NightCount int
	Headings   [2]Direction // indexed by CellState
	Entities   []EntityView
	Cells      []CellState // row-major copy
}

// Snapshot captures the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Width:      s.grid.W,
		Height:     s.grid.H,
		DayCount:   s.dayCount,
		NightCount: s.nightCount,
		Headings:   s.engine.headings,
		Entities:   s.Entities(),
		Cells:      s.grid.Cells(),
	}
}

// Equal reports whether two snapshots describe identical states.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Tick != b.Tick || a.Width != b.Width || a.Height != b.Height ||
		a.DayCount != b.DayCount || a.NightCount != b.NightCount ||
		a.Headings != b.Headings || len(a.Entities) != len(b.Entities) ||
		len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Entities {
		if a.Entities[i] != b.Entities[i] {
			return false
		}
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}
	return true
}
