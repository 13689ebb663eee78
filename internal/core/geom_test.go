package core

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{name: "inside", r: NewRect(0, 0, 10, 10), x: 5, y: 5, expected: true},
		{name: "top-left corner", r: NewRect(0, 0, 10, 10), x: 0, y: 0, expected: true},
		{name: "right edge exclusive", r: NewRect(0, 0, 10, 10), x: 10, y: 5, expected: false},
		{name: "bottom edge exclusive", r: NewRect(0, 0, 10, 10), x: 5, y: 10, expected: false},
		{name: "negative point", r: NewRect(0, 0, 10, 10), x: -1, y: 0, expected: false},
		{name: "offset rect", r: NewRect(3, 4, 2, 2), x: 4, y: 5, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min misbehaves")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max misbehaves")
	}
}
