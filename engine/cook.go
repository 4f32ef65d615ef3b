package engine

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/junipergames/cauldron/levelspec"
	"go.uber.org/zap"
)

type cookState int

const (
	cookIdle cookState = iota
	cookCarrying
	cookPlaced
)

// CookLevel: pick up the pot, place it on the stove, light it. Both
// transitions are one-shot; once the pot is placed and lit, completion is
// scheduled and further proximity has no effect.
type CookLevel struct {
	mover *Mover
	sched *Scheduler
	log   *zap.SugaredLogger

	potPos      cp.Vector
	stovePos    cp.Vector
	pickupRange float64
	placeRange  float64
	delay       time.Duration

	obstacles []cp.BB
	state     cookState

	complete func()
}

func NewCookLevel(spec *levelspec.LevelSpec, sched *Scheduler, log *zap.SugaredLogger, complete func()) *CookLevel {
	l := &CookLevel{
		mover:       NewMover(spec.Spawn.Vector(), spec.ObstacleBoxes()),
		sched:       sched,
		log:         log,
		potPos:      spec.Pot.Vector(),
		stovePos:    spec.Stove.Vector(),
		pickupRange: spec.PickupRange,
		placeRange:  spec.PlaceRange,
		delay:       time.Duration(spec.CompleteDelayMS) * time.Millisecond,
		obstacles:   spec.ObstacleBoxes(),
		complete:    complete,
	}
	l.check()
	return l
}

func (l *CookLevel) Move(dir Direction) {
	l.mover.Step(dir)
	l.check()
}

func (l *CookLevel) check() {
	c := l.mover.Center()
	switch l.state {
	case cookIdle:
		if WithinDist(c, Center(l.potPos), l.pickupRange) {
			l.state = cookCarrying
			l.log.Debugw("picked up pot", "pos", l.mover.Pos)
		}
	case cookCarrying:
		if WithinDist(c, Center(l.stovePos), l.placeRange) {
			l.state = cookPlaced
			l.log.Infow("pot placed and lit", "delay", l.delay)
			l.sched.After(l.delay, l.complete)
		}
	}
}

func (l *CookLevel) PointerDown(cp.Vector) {}
func (l *CookLevel) PointerMove(cp.Vector) {}
func (l *CookLevel) PointerUp()            {}
func (l *CookLevel) PointerCancel()        {}
func (l *CookLevel) Submit(string)         {}

// Carrying reports whether the pot is in hand.
func (l *CookLevel) Carrying() bool {
	return l.state == cookCarrying
}

// Placed reports whether the pot is on the stove and lit.
func (l *CookLevel) Placed() bool {
	return l.state == cookPlaced
}

func (l *CookLevel) fill(snap *Snapshot) {
	snap.Level = "cook"
	snap.Player = l.mover.Pos
	snap.Facing = l.mover.Facing
	if l.state == cookCarrying {
		snap.Carrying = ItemPot
	}
	snap.PotOnStove = l.state == cookPlaced
	snap.Lit = l.state == cookPlaced
	snap.Obstacles = l.obstacles

	potPos := l.potPos
	if l.state == cookPlaced {
		potPos = l.stovePos
	}
	snap.Props = []Prop{
		{Kind: "pot", Pos: potPos, Taken: l.state == cookCarrying},
		{Kind: "stove", Pos: l.stovePos},
	}
}
