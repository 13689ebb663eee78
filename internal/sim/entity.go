package sim

// Entity is a moving orb tied to one cell state. Its heading lives in the
// engine's per-type direction state, not on the entity itself: all entities
// of one type share a heading. The previous position is kept for trail and
// debug rendering only and never feeds back into movement.
type Entity struct {
	X, Y   int       // current position
	PX, PY int       // previous position
	Type   CellState // fixed at creation
}

// NewEntity creates an entity at (x, y) with the given type. The previous
// position starts equal to the current one.
func NewEntity(x, y int, t CellState) *Entity {
	return &Entity{X: x, Y: y, PX: x, PY: y, Type: t}
}

// EntityView is a read-only copy of an entity's state for renderers and
// other external consumers.
type EntityView struct {
	X, Y   int
	PX, PY int
	Type   CellState
}

// View returns a read-only copy of the entity.
func (e *Entity) View() EntityView {
	return EntityView{X: e.X, Y: e.Y, PX: e.PX, PY: e.PY, Type: e.Type}
}
