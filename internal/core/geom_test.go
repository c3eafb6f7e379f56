package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAround(Vec{X: 0, Y: 0}, 10, 10),
			b:        BoxAround(Vec{X: 5, Y: 5}, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontal",
			a:        BoxAround(Vec{X: 0, Y: 0}, 10, 10),
			b:        BoxAround(Vec{X: 20, Y: 0}, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertical",
			a:        BoxAround(Vec{X: 0, Y: 0}, 10, 10),
			b:        BoxAround(Vec{X: 0, Y: 20}, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges count as intersecting",
			a:        BoxAround(Vec{X: 0, Y: 0}, 10, 10),
			b:        BoxAround(Vec{X: 10, Y: 0}, 10, 10),
			expected: true,
		},
		{
			name:     "touching corners count as intersecting",
			a:        BoxAround(Vec{X: 0, Y: 0}, 10, 10),
			b:        BoxAround(Vec{X: 10, Y: 10}, 10, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        BoxAround(Vec{X: 0, Y: 0}, 20, 20),
			b:        BoxAround(Vec{X: 2, Y: 2}, 4, 4),
			expected: true,
		},
		{
			name:     "same center different sizes",
			a:        BoxAround(Vec{X: 100, Y: 100}, 25, 20),
			b:        BoxAround(Vec{X: 100, Y: 100}, 3, 15),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(Vec{X: 100, Y: 50}, 30, 20)

	if b.MinX != 85 || b.MaxX != 115 {
		t.Errorf("Horizontal extent = [%v, %v], expected [85, 115]", b.MinX, b.MaxX)
	}
	if b.MinY != 40 || b.MaxY != 60 {
		t.Errorf("Vertical extent = [%v, %v], expected [40, 60]", b.MinY, b.MaxY)
	}
}

func TestBoxContains(t *testing.T) {
	b := BoxAround(Vec{X: 10, Y: 10}, 10, 10)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"center", Vec{X: 10, Y: 10}, true},
		{"edge is inside (closed)", Vec{X: 5, Y: 10}, true},
		{"corner is inside (closed)", Vec{X: 15, Y: 15}, true},
		{"outside left", Vec{X: 4, Y: 10}, false},
		{"outside below", Vec{X: 10, Y: 16}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVecAdd(t *testing.T) {
	v := Vec{X: 3, Y: -8}.Add(Vec{X: 1, Y: 2})
	if v.X != 4 || v.Y != -6 {
		t.Errorf("Add() = %v, expected {4, -6}", v)
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

func TestClampF(t *testing.T) {
	if got := ClampF(8.1, 2.0, 8.0); got != 8.0 {
		t.Errorf("ClampF(8.1, 2.0, 8.0) = %v, expected 8.0", got)
	}
	if got := ClampF(1.9, 2.0, 8.0); got != 2.0 {
		t.Errorf("ClampF(1.9, 2.0, 8.0) = %v, expected 2.0", got)
	}
	if got := ClampF(5.5, 2.0, 8.0); got != 5.5 {
		t.Errorf("ClampF(5.5, 2.0, 8.0) = %v, expected 5.5", got)
	}
}
