package levelspec

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestLoadLevelEmbeddedDefaults(t *testing.T) {
	cases := []struct {
		name      string
		level     string
		wantProps func(t *testing.T, s *LevelSpec)
	}{
		{
			name:  "cook",
			level: "cook",
			wantProps: func(t *testing.T, s *LevelSpec) {
				if s.Pot == nil || s.Stove == nil {
					t.Fatal("cook level needs pot and stove")
				}
				if s.Pot.X != 200 || s.Pot.Y != 200 {
					t.Fatalf("pot at {%v %v}, want {200 200}", s.Pot.X, s.Pot.Y)
				}
				if s.PickupRange != 80 || s.PlaceRange != 150 {
					t.Fatalf("ranges = %v/%v, want 80/150", s.PickupRange, s.PlaceRange)
				}
				if s.CompleteDelayMS != 1500 {
					t.Fatalf("delay = %d, want 1500", s.CompleteDelayMS)
				}
			},
		},
		{
			name:  "door",
			level: "door",
			wantProps: func(t *testing.T, s *LevelSpec) {
				if s.Door == nil {
					t.Fatal("door level needs a door")
				}
				if s.OpenRange != 150 {
					t.Fatalf("open range = %v, want 150", s.OpenRange)
				}
			},
		},
		{
			name:  "stir",
			level: "stir",
			wantProps: func(t *testing.T, s *LevelSpec) {
				if s.Spoon == nil || s.Pot == nil || s.PotHit == nil {
					t.Fatal("stir level needs spoon, pot and pot_hit")
				}
				if s.StirRange != 250 {
					t.Fatalf("stir range = %v, want 250", s.StirRange)
				}
				if s.CompleteDelayMS != 500 {
					t.Fatalf("delay = %d, want 500", s.CompleteDelayMS)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := LoadLevel(c.level)
			if err != nil {
				t.Fatalf("LoadLevel(%q): %v", c.level, err)
			}
			if spec.Name != c.level {
				t.Fatalf("name = %q, want %q", spec.Name, c.level)
			}
			if len(spec.Obstacles) < 2 || len(spec.Obstacles) > 3 {
				t.Fatalf("expected 2-3 obstacles, got %d", len(spec.Obstacles))
			}
			c.wantProps(t, spec)
		})
	}
}

func TestLoadLevelMissing(t *testing.T) {
	if _, err := LoadLevel("pantry"); err == nil {
		t.Fatal("expected an error for a missing level")
	}
}

func TestRectSpecBB(t *testing.T) {
	r := RectSpec{X: 10, Y: 20, W: 30, H: 40}
	want := cp.BB{L: 10, B: 20, R: 40, T: 60}
	if got := r.BB(); got != want {
		t.Fatalf("BB() = %v, want %v", got, want)
	}
}

func TestVecVector(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if got := v.Vector(); got != (cp.Vector{X: 3, Y: 4}) {
		t.Fatalf("Vector() = %v, want {3 4}", got)
	}
}
