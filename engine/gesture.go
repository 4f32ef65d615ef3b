package engine

import "github.com/jakecoffman/cp"

const (
	// gestureDivisor converts drag displacement into progress.
	gestureDivisor = 15.0

	// GestureTarget is the progress value that completes the gesture.
	GestureTarget = 100.0
)

// Gesture accumulates pointer-drag displacement into a bounded progress
// value. The last-seen position advances on every move so that losing the
// gate pauses accumulation instead of banking the skipped distance.
type Gesture struct {
	active   bool
	last     cp.Vector
	progress float64
	done     bool

	onComplete func()
}

// NewGesture returns an accumulator that calls onComplete exactly once, on
// the first crossing of GestureTarget.
func NewGesture(onComplete func()) *Gesture {
	return &Gesture{onComplete: onComplete}
}

// Begin captures the pointer at p and starts a drag.
func (g *Gesture) Begin(p cp.Vector) {
	g.active = true
	g.last = p
}

// Move consumes a pointer position. Displacement from the last-seen position
// counts toward progress only while the drag is active and gated holds.
func (g *Gesture) Move(p cp.Vector, gated bool) {
	if !g.active {
		return
	}
	if gated {
		g.progress += p.Distance(g.last) / gestureDivisor
		if !g.done && g.progress >= GestureTarget {
			g.done = true
			if g.onComplete != nil {
				g.onComplete()
			}
		}
	}
	g.last = p
}

// End releases the pointer. Both pointer-up and pointer-cancel land here so a
// drag can never get stuck.
func (g *Gesture) End() {
	g.active = false
}

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool {
	return g.active
}

// Progress returns the raw accumulated value, which may exceed GestureTarget.
func (g *Gesture) Progress() float64 {
	return g.progress
}

// Display returns progress clamped to GestureTarget for rendering.
func (g *Gesture) Display() float64 {
	if g.progress > GestureTarget {
		return GestureTarget
	}
	return g.progress
}

// Done reports whether the target has been crossed.
func (g *Gesture) Done() bool {
	return g.done
}
