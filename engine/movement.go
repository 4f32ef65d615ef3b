package engine

import "github.com/jakecoffman/cp"

// Direction is a single discrete movement input.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Mover maintains the player position and facing against a static set of
// obstacles. One Step per delivered input event; there is no held-key state.
type Mover struct {
	Pos    cp.Vector
	Facing int // -1 left, +1 right

	obstacles []cp.BB
}

func NewMover(spawn cp.Vector, obstacles []cp.BB) *Mover {
	return &Mover{Pos: spawn, Facing: 1, obstacles: obstacles}
}

// Step applies one directional input. Left/right also set facing, whether or
// not the horizontal motion ends up blocked.
func (m *Mover) Step(dir Direction) {
	var dx, dy float64
	switch dir {
	case DirUp:
		dy = -StepSize
	case DirDown:
		dy = StepSize
	case DirLeft:
		dx = -StepSize
		m.Facing = -1
	case DirRight:
		dx = StepSize
		m.Facing = 1
	}
	m.StepXY(dx, dy)
}

// StepXY applies a combined displacement. Both candidates are computed from
// the current position, clamped to the arena, then resolved per axis in
// X-then-Y order so that motion along an unblocked axis still applies when
// the other axis hits a wall.
func (m *Mover) StepXY(dx, dy float64) {
	nx := clamp(m.Pos.X+dx, 0, ArenaWidth-SpriteSize)
	ny := clamp(m.Pos.Y+dy, 0, ArenaHeight-SpriteSize)

	if !m.blocked(cp.Vector{X: nx, Y: m.Pos.Y}) {
		m.Pos.X = nx
	}
	if !m.blocked(cp.Vector{X: m.Pos.X, Y: ny}) {
		m.Pos.Y = ny
	}
}

func (m *Mover) blocked(pos cp.Vector) bool {
	box := Box(pos)
	for _, ob := range m.obstacles {
		if Overlaps(box, ob) {
			return true
		}
	}
	return false
}

// Center returns the player's sprite center.
func (m *Mover) Center() cp.Vector {
	return Center(m.Pos)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
