package sim

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{LeftUp, -1, -1},
		{Up, 0, -1},
		{RightUp, 1, -1},
		{Left, -1, 0},
		{Right, 1, 0},
		{LeftDown, -1, 1},
		{Down, 0, 1},
		{RightDown, 1, 1},
	}

	for _, tc := range tests {
		dx, dy := tc.d.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d,%d), expected (%d,%d)", tc.d, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestDiagonal(t *testing.T) {
	for _, d := range diagonals {
		if !d.Diagonal() {
			t.Errorf("%v should be diagonal", d)
		}
	}
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.Diagonal() {
			t.Errorf("%v should not be diagonal", d)
		}
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		d    Direction
		b    Boundary
		want Direction
	}{
		{"left-up off top", LeftUp, BoundaryTop, LeftDown},
		{"right-up off top", RightUp, BoundaryTop, RightDown},
		{"left-down off bottom", LeftDown, BoundaryBottom, LeftUp},
		{"right-down off bottom", RightDown, BoundaryBottom, RightUp},
		{"left-up off left", LeftUp, BoundaryLeft, RightUp},
		{"left-down off left", LeftDown, BoundaryLeft, RightDown},
		{"right-up off right", RightUp, BoundaryRight, LeftUp},
		{"right-down off right", RightDown, BoundaryRight, LeftDown},
		// Unlisted pairs keep the heading.
		{"left-down off top unchanged", LeftDown, BoundaryTop, LeftDown},
		{"right-up off bottom unchanged", RightUp, BoundaryBottom, RightUp},
		{"right-down off left unchanged", RightDown, BoundaryLeft, RightDown},
		{"left-up off right unchanged", LeftUp, BoundaryRight, LeftUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Reflect(tc.b); got != tc.want {
				t.Errorf("%v.Reflect(%d) = %v, expected %v", tc.d, tc.b, got, tc.want)
			}
		})
	}
}

func TestBoundaryForOrder(t *testing.T) {
	// Top outranks left for a corner overshoot; a second check sees left.
	if got := boundaryFor(-1, -1, 5, 5); got != BoundaryTop {
		t.Errorf("boundaryFor(-1,-1) = %d, expected top", got)
	}
	if got := boundaryFor(-1, 1, 5, 5); got != BoundaryLeft {
		t.Errorf("boundaryFor(-1,1) = %d, expected left", got)
	}
	if got := boundaryFor(5, 5, 5, 5); got != BoundaryBottom {
		t.Errorf("boundaryFor(5,5) = %d, expected bottom", got)
	}
	if got := boundaryFor(5, 2, 5, 5); got != BoundaryRight {
		t.Errorf("boundaryFor(5,2) = %d, expected right", got)
	}
	if got := boundaryFor(2, 2, 5, 5); got != boundaryNone {
		t.Errorf("boundaryFor(2,2) = %d, expected none", got)
	}
}

func TestCollisionTables(t *testing.T) {
	altTests := []struct {
		d    Direction
		want [2]Direction
	}{
		{LeftUp, [2]Direction{RightUp, LeftDown}},
		{RightUp, [2]Direction{LeftUp, RightDown}},
		{LeftDown, [2]Direction{LeftUp, RightDown}},
		{RightDown, [2]Direction{RightUp, LeftDown}},
	}
	for _, tc := range altTests {
		got, ok := alternatives(tc.d)
		if !ok || got != tc.want {
			t.Errorf("alternatives(%v) = %v/%v, expected %v", tc.d, got, ok, tc.want)
		}
	}
	if _, ok := alternatives(Up); ok {
		t.Error("orthogonal headings have no alternatives")
	}

	secTests := []struct {
		adopted Direction
		want    Direction
	}{
		{RightUp, Left},
		{LeftDown, Right},
		{LeftUp, Right},
		{RightDown, Up},
	}
	for _, tc := range secTests {
		got, ok := secondaryFor(tc.adopted)
		if !ok || got != tc.want {
			t.Errorf("secondaryFor(%v) = %v/%v, expected %v", tc.adopted, got, ok, tc.want)
		}
	}

	fbTests := []struct {
		d    Direction
		want []Direction
	}{
		{LeftUp, []Direction{Right, Left}},
		{RightUp, []Direction{Left, Down}},
		{LeftDown, []Direction{Right, Down}},
		{RightDown, []Direction{Up, Left}},
	}
	for _, tc := range fbTests {
		got := fallbackSecondaries(tc.d)
		if len(got) != 2 || got[0] != tc.want[0] || got[1] != tc.want[1] {
			t.Errorf("fallbackSecondaries(%v) = %v, expected %v", tc.d, got, tc.want)
		}
	}
}
