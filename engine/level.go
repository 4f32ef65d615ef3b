package engine

import "github.com/jakecoffman/cp"

// Item is what the player is currently carrying. At most one item per level,
// and once placed or consumed it is never re-acquired.
type Item int

const (
	ItemNone Item = iota
	ItemPot
	ItemSpoon
)

func (i Item) String() string {
	switch i {
	case ItemPot:
		return "pot"
	case ItemSpoon:
		return "spoon"
	}
	return "none"
}

// level is the per-phase interaction state machine. Every level consumes the
// full event surface; events it has no use for are silent no-ops.
type level interface {
	Move(dir Direction)
	PointerDown(p cp.Vector)
	PointerMove(p cp.Vector)
	PointerUp()
	PointerCancel()
	Submit(text string)
	fill(snap *Snapshot)
}
