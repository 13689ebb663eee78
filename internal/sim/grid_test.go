package sim

import (
	"errors"
	"testing"
)

func TestNewGridSplit(t *testing.T) {
	// Odd width: the middle column stays day.
	g := NewGrid(5, 5)

	day, night := g.CountStates()
	if day != 15 || night != 10 {
		t.Errorf("5x5 split: got day=%d night=%d, expected 15/10", day, night)
	}

	cases := []struct {
		x, y int
		want CellState
	}{
		{0, 0, Day},
		{2, 4, Day}, // middle column
		{3, 0, Night},
		{4, 4, Night},
	}
	for _, tc := range cases {
		got, err := g.State(tc.x, tc.y)
		if err != nil {
			t.Fatalf("State(%d,%d) failed: %v", tc.x, tc.y, err)
		}
		if got != tc.want {
			t.Errorf("State(%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}

	// Even width: clean half split.
	g = NewGrid(6, 4)
	day, night = g.CountStates()
	if day != 12 || night != 12 {
		t.Errorf("6x4 split: got day=%d night=%d, expected 12/12", day, night)
	}
	if got, _ := g.State(2, 0); got != Day {
		t.Error("column 2 of 6-wide grid should be day")
	}
	if got, _ := g.State(3, 0); got != Night {
		t.Error("column 3 of 6-wide grid should be night")
	}
}

func TestGridToggle(t *testing.T) {
	g := NewGrid(4, 4)

	if err := g.Toggle(0, 0); err != nil {
		t.Fatalf("Toggle(0,0) failed: %v", err)
	}
	if got, _ := g.State(0, 0); got != Night {
		t.Error("toggled day cell should be night")
	}

	if err := g.Toggle(0, 0); err != nil {
		t.Fatalf("Toggle(0,0) failed: %v", err)
	}
	if got, _ := g.State(0, 0); got != Day {
		t.Error("double-toggled cell should be back to day")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)

	coords := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3},
	}
	for _, c := range coords {
		if _, err := g.State(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("State(%d,%d): expected ErrOutOfBounds, got %v", c.x, c.y, err)
		}
		if err := g.Toggle(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Toggle(%d,%d): expected ErrOutOfBounds, got %v", c.x, c.y, err)
		}
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(4, 4)
	g.Reset()

	day, night := g.CountStates()
	if day != 16 || night != 0 {
		t.Errorf("after Reset: got day=%d night=%d, expected 16/0", day, night)
	}
}

func TestCountStatesInvariant(t *testing.T) {
	g := NewGrid(7, 5)

	// Toggling arbitrary cells never changes the total.
	toggles := []struct{ x, y int }{{0, 0}, {6, 4}, {3, 2}, {3, 2}, {1, 4}}
	for _, c := range toggles {
		if err := g.Toggle(c.x, c.y); err != nil {
			t.Fatalf("Toggle(%d,%d) failed: %v", c.x, c.y, err)
		}
		day, night := g.CountStates()
		if day+night != 35 {
			t.Fatalf("day+night = %d, expected 35", day+night)
		}
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(4, 4)
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	if err := g.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if g.Equal(clone) {
		t.Error("clone should not track the original after mutation")
	}
}
