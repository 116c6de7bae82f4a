package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{12, 12, true},  // inside
		{10, 10, true},  // top-left corner
		{14, 14, true},  // bottom-right inside
		{15, 15, false}, // just outside
		{9, 12, false},  // left of rect
		{12, 20, false}, // below rect
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"normal", NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4)},
		{"collapses", NewRect(2, 2, 3, 3), 2, NewRect(4, 4, 0, 0)},
		{"zero", NewRect(1, 2, 3, 4), 0, NewRect(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.n); got != tt.expected {
				t.Errorf("Inset(%d) = %+v, want %+v", tt.n, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}

func TestColorBright(t *testing.T) {
	tests := []struct {
		in, want Color
	}{
		{ColorGreen, ColorBrightGreen},
		{ColorRed, ColorBrightRed},
		{ColorYellow, ColorBrightYellow},
		{ColorBlue, ColorBrightBlue},
		{ColorGray, ColorGray},
	}
	for _, tt := range tests {
		if got := tt.in.Bright(); got != tt.want {
			t.Errorf("%d.Bright() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
