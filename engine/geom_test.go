package engine

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b cp.BB
		want bool
	}{
		{"separate", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 20, B: 20, R: 30, T: 30}, false},
		{"overlapping", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 5, B: 5, R: 15, T: 15}, true},
		{"contained", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 2, B: 2, R: 8, T: 8}, true},
		{"touching_edge", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 10, B: 0, R: 20, T: 10}, false},
		{"touching_corner", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 10, B: 10, R: 20, T: 20}, false},
		{"x_overlap_only", cp.BB{L: 0, B: 0, R: 10, T: 10}, cp.BB{L: 5, B: 20, R: 15, T: 30}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.a, c.b); got != c.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
			if got := Overlaps(c.b, c.a); got != c.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", c.b, c.a, got, c.want)
			}
		})
	}
}

func TestWithinDist(t *testing.T) {
	cases := []struct {
		name      string
		a, b      cp.Vector
		threshold float64
		want      bool
	}{
		{"inside", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 30, Y: 40}, 51, true},
		{"exactly_at_threshold", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 30, Y: 40}, 50, false},
		{"outside", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 100, Y: 0}, 80, false},
		{"same_point", cp.Vector{X: 5, Y: 5}, cp.Vector{X: 5, Y: 5}, 1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WithinDist(c.a, c.b, c.threshold); got != c.want {
				t.Fatalf("WithinDist(%v, %v, %v) = %v, want %v", c.a, c.b, c.threshold, got, c.want)
			}
		})
	}
}

func TestBoxAndCenter(t *testing.T) {
	pos := cp.Vector{X: 100, Y: 200}

	box := Box(pos)
	want := cp.BB{L: 100, B: 200, R: 100 + SpriteSize, T: 200 + SpriteSize}
	if box != want {
		t.Fatalf("Box(%v) = %v, want %v", pos, box, want)
	}

	center := Center(pos)
	if center.X != 132 || center.Y != 232 {
		t.Fatalf("Center(%v) = %v, want {132 232}", pos, center)
	}
}
