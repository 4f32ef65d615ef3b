package engine

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestGestureAccumulation(t *testing.T) {
	t.Run("displacement_over_15", func(t *testing.T) {
		g := NewGesture(nil)
		g.Begin(cp.Vector{X: 0, Y: 0})
		g.Move(cp.Vector{X: 15, Y: 0}, true)
		if math.Abs(g.Progress()-1) > 1e-9 {
			t.Fatalf("progress = %v, want 1", g.Progress())
		}
		g.Move(cp.Vector{X: 15, Y: 30}, true)
		if math.Abs(g.Progress()-3) > 1e-9 {
			t.Fatalf("progress = %v, want 3", g.Progress())
		}
	})

	t.Run("monotonic_under_gate_toggling", func(t *testing.T) {
		g := NewGesture(nil)
		g.Begin(cp.Vector{X: 0, Y: 0})
		prev := 0.0
		for i := 1; i <= 40; i++ {
			g.Move(cp.Vector{X: float64(i * 15), Y: 0}, i%3 != 0)
			if g.Progress() < prev {
				t.Fatalf("progress decreased from %v to %v", prev, g.Progress())
			}
			prev = g.Progress()
		}
	})

	t.Run("gate_loss_pauses_without_banking", func(t *testing.T) {
		g := NewGesture(nil)
		g.Begin(cp.Vector{X: 0, Y: 0})
		g.Move(cp.Vector{X: 15, Y: 0}, true)

		// a large ungated jump must not count, even retroactively
		g.Move(cp.Vector{X: 915, Y: 0}, false)
		if math.Abs(g.Progress()-1) > 1e-9 {
			t.Fatalf("ungated motion changed progress to %v", g.Progress())
		}
		g.Move(cp.Vector{X: 930, Y: 0}, true)
		if math.Abs(g.Progress()-2) > 1e-9 {
			t.Fatalf("progress after regate = %v, want 2", g.Progress())
		}
	})

	t.Run("ignores_moves_without_begin", func(t *testing.T) {
		g := NewGesture(nil)
		g.Move(cp.Vector{X: 100, Y: 100}, true)
		if g.Progress() != 0 {
			t.Fatalf("progress = %v, want 0", g.Progress())
		}
	})

	t.Run("ignores_moves_after_end", func(t *testing.T) {
		g := NewGesture(nil)
		g.Begin(cp.Vector{X: 0, Y: 0})
		g.End()
		g.Move(cp.Vector{X: 150, Y: 0}, true)
		if g.Progress() != 0 {
			t.Fatalf("progress = %v, want 0", g.Progress())
		}
	})
}

func TestGestureCompletionFiresOnce(t *testing.T) {
	completions := 0
	g := NewGesture(func() { completions++ })
	g.Begin(cp.Vector{X: 0, Y: 0})

	// 99 moves of 15 units: just below the target
	for i := 1; i < 100; i++ {
		g.Move(cp.Vector{X: float64(i * 15), Y: 0}, true)
	}
	if completions != 0 {
		t.Fatalf("completed early at progress %v", g.Progress())
	}

	// crossing fires exactly once
	g.Move(cp.Vector{X: 1500, Y: 0}, true)
	if completions != 1 {
		t.Fatalf("expected 1 completion, got %d", completions)
	}
	if !g.Done() {
		t.Fatal("Done() should report true after crossing")
	}

	// overshoot keeps accumulating but never re-fires
	for i := 0; i < 20; i++ {
		g.Move(cp.Vector{X: float64(1500 + (i+1)*30), Y: 0}, true)
	}
	if completions != 1 {
		t.Fatalf("completion re-fired, got %d", completions)
	}
	if g.Progress() <= GestureTarget {
		t.Fatalf("raw progress should exceed target, got %v", g.Progress())
	}
	if g.Display() != GestureTarget {
		t.Fatalf("display should clamp at %v, got %v", GestureTarget, g.Display())
	}
}
