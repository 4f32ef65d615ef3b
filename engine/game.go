package engine

import (
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/junipergames/cauldron/levelspec"
	"go.uber.org/zap"
)

// Game phases. Monotonic; only completion signals move them forward.
const (
	PhaseStart = 0
	PhaseCook  = 1
	PhaseDoor  = 2
	PhaseStir  = 3
	PhaseWin   = 4
)

// Specs bundles the three level definitions.
type Specs struct {
	Cook *levelspec.LevelSpec
	Door *levelspec.LevelSpec
	Stir *levelspec.LevelSpec
}

// LoadSpecs reads all level definitions (embedded defaults, disk override).
func LoadSpecs() (Specs, error) {
	var specs Specs
	var err error
	if specs.Cook, err = levelspec.LoadLevel("cook"); err != nil {
		return specs, err
	}
	if specs.Door, err = levelspec.LoadLevel("door"); err != nil {
		return specs, err
	}
	if specs.Stir, err = levelspec.LoadLevel("stir"); err != nil {
		return specs, err
	}
	return specs, nil
}

// Game owns the phase counter and the active level. Levels never write the
// phase themselves; they get Advance injected as their completion callback.
type Game struct {
	phase int
	level level
	sched *Scheduler
	specs Specs
	log   *zap.SugaredLogger
}

func New(specs Specs, log *zap.SugaredLogger, now time.Time) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Game{
		specs: specs,
		sched: NewScheduler(now),
		log:   log,
	}
}

// Update advances the scheduler; any due completion signal fires here, on the
// caller's goroutine.
func (g *Game) Update(now time.Time) {
	g.sched.Advance(now)
}

// Begin leaves the start screen. A no-op on any other phase.
func (g *Game) Begin() {
	if g.phase != PhaseStart {
		return
	}
	g.Advance()
}

// Advance moves to the next phase and mounts its level fresh. Pending tasks
// from the previous level are cancelled first so a stale completion signal
// can never advance a level it no longer belongs to.
func (g *Game) Advance() {
	if g.phase >= PhaseWin {
		return
	}
	g.sched.CancelPending()
	g.phase++
	g.level = g.buildLevel()
	g.log.Infow("phase advanced", "phase", g.phase)
}

// JumpTo mounts the named level directly. Development affordance for the
// -level flag; normal play only ever calls Advance.
func (g *Game) JumpTo(name string) error {
	var phase int
	switch name {
	case "cook":
		phase = PhaseCook
	case "door":
		phase = PhaseDoor
	case "stir":
		phase = PhaseStir
	default:
		return fmt.Errorf("engine: unknown level %q", name)
	}
	g.sched.CancelPending()
	g.phase = phase
	g.level = g.buildLevel()
	return nil
}

// Reload swaps in new level definitions and remounts the active level.
func (g *Game) Reload(specs Specs) {
	g.specs = specs
	if g.level == nil {
		return
	}
	g.sched.CancelPending()
	g.level = g.buildLevel()
	g.log.Infow("level reloaded", "phase", g.phase)
}

func (g *Game) buildLevel() level {
	switch g.phase {
	case PhaseCook:
		return NewCookLevel(g.specs.Cook, g.sched, g.log, g.Advance)
	case PhaseDoor:
		return NewDoorLevel(g.specs.Door, g.sched, g.log, g.Advance)
	case PhaseStir:
		return NewStirLevel(g.specs.Stir, g.sched, g.log, g.Advance)
	}
	return nil
}

// Phase returns the current phase.
func (g *Game) Phase() int {
	return g.phase
}

// Move applies one directional input to the active level.
func (g *Game) Move(dir Direction) {
	if g.level != nil {
		g.level.Move(dir)
	}
}

func (g *Game) PointerDown(p cp.Vector) {
	if g.level != nil {
		g.level.PointerDown(p)
	}
}

func (g *Game) PointerMove(p cp.Vector) {
	if g.level != nil {
		g.level.PointerMove(p)
	}
}

func (g *Game) PointerUp() {
	if g.level != nil {
		g.level.PointerUp()
	}
}

func (g *Game) PointerCancel() {
	if g.level != nil {
		g.level.PointerCancel()
	}
}

// Submit feeds prompt text to the active level.
func (g *Game) Submit(text string) {
	if g.level != nil {
		g.level.Submit(text)
	}
}

// Snapshot returns the per-frame state the renderer consumes.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Phase: g.phase}
	if g.level != nil {
		g.level.fill(&snap)
	}
	return snap
}
