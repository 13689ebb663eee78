package sim

import (
	"errors"
	"testing"
)

func TestMovePlainStep(t *testing.T) {
	// Night entity at (1,1) heading left-up: (0,0) is day, no collision.
	g := NewGrid(5, 5)
	e := NewEngine(1)
	ent := NewEntity(1, 1, Night)

	result, err := e.Move(ent, g)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !result.Success || result.X != 0 || result.Y != 0 {
		t.Errorf("expected move to (0,0), got success=%v (%d,%d)", result.Success, result.X, result.Y)
	}
	if len(result.Toggles) != 0 {
		t.Errorf("plain step should produce no toggles, got %v", result.Toggles)
	}
	if ent.X != 0 || ent.Y != 0 {
		t.Errorf("entity at (%d,%d), expected (0,0)", ent.X, ent.Y)
	}
	if ent.PX != 1 || ent.PY != 1 {
		t.Errorf("previous position (%d,%d), expected (1,1)", ent.PX, ent.PY)
	}
	if e.Heading(Night) != LeftUp {
		t.Errorf("heading changed to %v without cause", e.Heading(Night))
	}
}

func TestMoveCornerDoubleReflection(t *testing.T) {
	// From (0,0) heading left-up the candidate (-1,-1) crosses top and
	// left. Top wins first: left-up becomes left-down. The new candidate
	// (-1,1) still crosses left: left-down becomes right-down. (1,1) is
	// day, so the night entity lands there.
	g := NewGrid(5, 5)
	e := NewEngine(1)
	ent := NewEntity(0, 0, Night)

	result, err := e.Move(ent, g)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !result.Success || ent.X != 1 || ent.Y != 1 {
		t.Errorf("expected entity at (1,1), got (%d,%d)", ent.X, ent.Y)
	}
	if len(result.Toggles) != 0 {
		t.Errorf("reflections should not toggle cells, got %v", result.Toggles)
	}
	if e.Heading(Night) != RightDown {
		t.Errorf("heading = %v, expected right-down", e.Heading(Night))
	}
}

func TestMoveCollisionAdoptsAlternative(t *testing.T) {
	// All-day board with one night cell at (3,1). The day entity at (2,2)
	// heading left-up collides at (1,1); the first alternative right-up
	// clears via (3,1), so it is adopted with its secondary offset Left,
	// marking (0,1) next to the collision cell.
	g := NewGrid(5, 5)
	g.Reset()
	if err := g.Toggle(3, 1); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	e := NewEngine(1)
	ent := NewEntity(2, 2, Day)

	result, err := e.Move(ent, g)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !result.Success || ent.X != 3 || ent.Y != 1 {
		t.Errorf("expected entity at (3,1), got (%d,%d)", ent.X, ent.Y)
	}

	want := []Coord{C(1, 1), C(0, 1)}
	if len(result.Toggles) != len(want) {
		t.Fatalf("toggles = %v, expected %v", result.Toggles, want)
	}
	for i := range want {
		if result.Toggles[i] != want[i] {
			t.Errorf("toggle[%d] = %v, expected %v", i, result.Toggles[i], want[i])
		}
	}
	if e.Heading(Day) != RightUp {
		t.Errorf("heading = %v, expected right-up", e.Heading(Day))
	}
}

func TestMoveCollisionDropsEdgeSecondary(t *testing.T) {
	// Collision at (0,0): the adopted alternative right-up carries
	// secondary offset Left, whose target (-1,0) is out of bounds and
	// silently dropped. Only the collision cell itself is toggled.
	g := NewGrid(5, 5)
	g.Reset()
	if err := g.Toggle(2, 0); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	e := NewEngine(1)
	ent := NewEntity(1, 1, Day)

	result, err := e.Move(ent, g)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if len(result.Toggles) != 1 || result.Toggles[0] != C(0, 0) {
		t.Errorf("toggles = %v, expected [(0,0)]", result.Toggles)
	}
	if !result.Success || ent.X != 2 || ent.Y != 0 {
		t.Errorf("expected entity at (2,0), got (%d,%d)", ent.X, ent.Y)
	}
}

func TestMoveRetryLimit(t *testing.T) {
	// A day entity surrounded entirely by day cells can never commit:
	// every attempt collides, both alternatives fail, and the random
	// fallback re-collides. The move must stop at the retry bound.
	g := NewGrid(5, 5)
	g.Reset()
	e := NewEngine(7)
	ent := NewEntity(2, 2, Day)

	result, err := e.Move(ent, g)
	if !errors.Is(err, ErrRetryLimit) {
		t.Fatalf("expected ErrRetryLimit, got %v", err)
	}
	if result.Success {
		t.Error("failed move must not report success")
	}
	if ent.X != 2 || ent.Y != 2 {
		t.Errorf("failed move must not displace the entity, got (%d,%d)", ent.X, ent.Y)
	}
	// Every attempt records at least its collision cell.
	if len(result.Toggles) < maxMoveAttempts {
		t.Errorf("expected at least %d accumulated toggles, got %d", maxMoveAttempts, len(result.Toggles))
	}
	for _, c := range result.Toggles {
		if !g.InBounds(c.X, c.Y) {
			t.Errorf("out-of-bounds toggle %v leaked into the result", c)
		}
	}
}

func TestSharedHeadingPerType(t *testing.T) {
	// Two night entities share one heading slot: a reflection caused by
	// the first changes the direction the second moves in.
	g := NewGrid(8, 8)
	e := NewEngine(1)
	first := NewEntity(0, 4, Night)  // left-up crosses the left edge
	second := NewEntity(2, 4, Night) // follows the reflected heading

	if _, err := e.Move(first, g); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if e.Heading(Night) != RightUp {
		t.Fatalf("heading = %v, expected right-up after left reflection", e.Heading(Night))
	}

	if _, err := e.Move(second, g); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if second.X != 3 || second.Y != 3 {
		t.Errorf("second entity moved to (%d,%d), expected (3,3)", second.X, second.Y)
	}
}

func TestBatchMoveConcatenatesInOrder(t *testing.T) {
	// Both entities collide immediately; the combined toggle list keeps
	// entity order, then within-entity resolution order.
	g := NewGrid(6, 6)
	g.Reset()
	if err := g.Toggle(3, 1); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := g.Toggle(3, 3); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	e := NewEngine(1)
	// a collides at (1,1), adopts right-up (clears via the night cell at
	// (3,1)), lands there. b then moves under the shared right-up heading,
	// collides at (5,3), adopts left-up whose secondary target (6,3) is out
	// of bounds, and lands on the night cell at (3,3).
	a := NewEntity(2, 2, Day)
	b := NewEntity(4, 4, Day)

	toggles, err := e.BatchMove([]*Entity{a, b}, g)
	if err != nil {
		t.Fatalf("BatchMove failed: %v", err)
	}

	want := []Coord{C(1, 1), C(0, 1), C(5, 3)}
	if len(toggles) != len(want) {
		t.Fatalf("toggles = %v, expected %v", toggles, want)
	}
	for i := range want {
		if toggles[i] != want[i] {
			t.Errorf("toggle[%d] = %v, expected %v", i, toggles[i], want[i])
		}
	}
	if a.X != 3 || a.Y != 1 {
		t.Errorf("first entity at (%d,%d), expected (3,1)", a.X, a.Y)
	}
	if b.X != 3 || b.Y != 3 {
		t.Errorf("second entity at (%d,%d), expected (3,3)", b.X, b.Y)
	}
}

func TestApplyTogglesParity(t *testing.T) {
	g := NewGrid(4, 4)
	before, _ := g.State(1, 1)

	// The same coordinate twice cancels out.
	ApplyToggles(g, []Coord{C(1, 1), C(1, 1)})
	after, _ := g.State(1, 1)
	if after != before {
		t.Errorf("double toggle changed cell: %v -> %v", before, after)
	}

	// A third application flips it.
	ApplyToggles(g, []Coord{C(1, 1)})
	after, _ = g.State(1, 1)
	if after != before.Opposite() {
		t.Errorf("single toggle did not flip cell")
	}
}
