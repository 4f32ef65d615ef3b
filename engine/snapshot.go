package engine

import "github.com/jakecoffman/cp"

// Prop is an interactable fixture the renderer should draw.
type Prop struct {
	Kind  string
	Pos   cp.Vector
	Taken bool
}

// Snapshot is the per-frame view the renderer consumes. It carries no
// references into the engine; everything visual is derived from it.
type Snapshot struct {
	Phase int
	Level string

	Player       cp.Vector
	Facing       int
	Carrying     Item
	PlayerHidden bool

	// cook level
	PotOnStove bool
	Lit        bool

	// door level
	PromptOpen  bool
	PromptError string

	// stir level
	StirProgress float64 // clamped to GestureTarget
	Stirring     bool

	Obstacles []cp.BB
	Props     []Prop
}
