package sim

// Direction indexes the fixed table of unit vectors. Entities only ever
// travel along the four diagonals; the orthogonal directions exist as
// secondary-toggle offsets during collision resolution.
type Direction uint8

const (
	LeftUp Direction = iota
	Up
	RightUp
	Left
	Right
	LeftDown
	Down
	RightDown
)

// directionVectors holds the (dx, dy) unit vector per direction index.
// Up decreases Y, Down increases Y (screen coordinates).
var directionVectors = [8][2]int{
	{-1, -1}, // LeftUp
	{0, -1},  // Up
	{1, -1},  // RightUp
	{-1, 0},  // Left
	{1, 0},   // Right
	{-1, 1},  // LeftDown
	{0, 1},   // Down
	{1, 1},   // RightDown
}

// diagonals are the only directions an entity's heading may take.
var diagonals = [4]Direction{LeftUp, RightUp, LeftDown, RightDown}

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	v := directionVectors[d]
	return v[0], v[1]
}

// Diagonal returns true if the direction is a valid entity heading.
func (d Direction) Diagonal() bool {
	switch d {
	case LeftUp, RightUp, LeftDown, RightDown:
		return true
	default:
		return false
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case LeftUp:
		return "left-up"
	case Up:
		return "up"
	case RightUp:
		return "right-up"
	case Left:
		return "left"
	case Right:
		return "right"
	case LeftDown:
		return "left-down"
	case Down:
		return "down"
	case RightDown:
		return "right-down"
	default:
		return "unknown"
	}
}

// Boundary identifies which grid edge a candidate position crossed.
type Boundary uint8

const (
	boundaryNone Boundary = iota
	BoundaryTop
	BoundaryBottom
	BoundaryLeft
	BoundaryRight
)

// boundaryFor reports the first boundary (x, y) violates on a w×h grid.
// Checked in order top, bottom, left, right; a diagonal step from an
// interior cell crosses at most one axis, corners resolve over two calls.
func boundaryFor(x, y, w, h int) Boundary {
	switch {
	case y < 0:
		return BoundaryTop
	case y >= h:
		return BoundaryBottom
	case x < 0:
		return BoundaryLeft
	case x >= w:
		return BoundaryRight
	default:
		return boundaryNone
	}
}

// Reflect returns the heading after bouncing off the given boundary.
// Pairs not covered by a reflection rule keep the current heading.
func (d Direction) Reflect(b Boundary) Direction {
	switch b {
	case BoundaryTop:
		switch d {
		case LeftUp:
			return LeftDown
		case RightUp:
			return RightDown
		}
	case BoundaryBottom:
		switch d {
		case LeftDown:
			return LeftUp
		case RightDown:
			return RightUp
		}
	case BoundaryLeft:
		switch d {
		case LeftUp:
			return RightUp
		case LeftDown:
			return RightDown
		}
	case BoundaryRight:
		switch d {
		case RightUp:
			return LeftUp
		case RightDown:
			return LeftDown
		}
	}
	return d
}

// alternatives returns the two diagonal headings tried, in order, when the
// current heading collides. Non-diagonal headings have no alternatives.
func alternatives(d Direction) ([2]Direction, bool) {
	switch d {
	case LeftUp:
		return [2]Direction{RightUp, LeftDown}, true
	case RightUp:
		return [2]Direction{LeftUp, RightDown}, true
	case LeftDown:
		return [2]Direction{LeftUp, RightDown}, true
	case RightDown:
		return [2]Direction{RightUp, LeftDown}, true
	default:
		return [2]Direction{}, false
	}
}

// secondaryFor returns the single orthogonal toggle offset associated with
// adopting the given alternative heading.
func secondaryFor(adopted Direction) (Direction, bool) {
	switch adopted {
	case RightUp:
		return Left, true
	case LeftDown:
		return Right, true
	case LeftUp:
		return Right, true
	case RightDown:
		return Up, true
	default:
		return 0, false
	}
}

// fallbackSecondaries returns the two orthogonal toggle offsets applied
// when neither alternative clears and a random heading is chosen. Keyed by
// the heading that originally collided.
func fallbackSecondaries(original Direction) []Direction {
	switch original {
	case LeftUp:
		return []Direction{Right, Left}
	case RightUp:
		return []Direction{Left, Down}
	case LeftDown:
		return []Direction{Right, Down}
	case RightDown:
		return []Direction{Up, Left}
	default:
		return nil
	}
}
