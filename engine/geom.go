package engine

import "github.com/jakecoffman/cp"

const (
	// ArenaWidth and ArenaHeight are the fixed playfield size in world units.
	ArenaWidth  = 800
	ArenaHeight = 400

	// SpriteSize is the square side of the player and prop sprites.
	SpriteSize = 64

	// StepSize is how far one directional input moves the player.
	StepSize = 30
)

// Box returns the sprite bounding box for a top-left position. B is the
// minimum Y because we work in screen space (Y grows down), same as the
// static boxes the collision world builds.
func Box(pos cp.Vector) cp.BB {
	return cp.BB{L: pos.X, B: pos.Y, R: pos.X + SpriteSize, T: pos.Y + SpriteSize}
}

// Overlaps reports whether two boxes intersect with nonzero area.
// cp.BB.Intersects counts touching edges as intersecting, which would keep
// the player from sliding flush along a wall, so the strict test lives here.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// Center returns the sprite center for a top-left position.
func Center(pos cp.Vector) cp.Vector {
	return pos.Add(cp.Vector{X: SpriteSize / 2, Y: SpriteSize / 2})
}

// WithinDist reports whether two centers are strictly closer than threshold.
func WithinDist(a, b cp.Vector, threshold float64) bool {
	return a.Distance(b) < threshold
}
