package engine

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/junipergames/cauldron/levelspec"
	"go.uber.org/zap"
)

// StirLevel: grab the spoon, then stir the pot by dragging inside its hit
// region. Drag displacement feeds the gesture accumulator only while the
// player carries the spoon and stands within stirRange of the pot; losing
// proximity mid-drag pauses progress without resetting it.
type StirLevel struct {
	mover *Mover
	sched *Scheduler
	log   *zap.SugaredLogger

	spoonPos    cp.Vector
	potPos      cp.Vector
	potHit      cp.BB
	pickupRange float64
	stirRange   float64
	delay       time.Duration

	obstacles []cp.BB
	carrying  bool
	gesture   *Gesture

	complete func()
}

func NewStirLevel(spec *levelspec.LevelSpec, sched *Scheduler, log *zap.SugaredLogger, complete func()) *StirLevel {
	l := &StirLevel{
		mover:       NewMover(spec.Spawn.Vector(), spec.ObstacleBoxes()),
		sched:       sched,
		log:         log,
		spoonPos:    spec.Spoon.Vector(),
		potPos:      spec.Pot.Vector(),
		potHit:      spec.PotHit.BB(),
		pickupRange: spec.PickupRange,
		stirRange:   spec.StirRange,
		delay:       time.Duration(spec.CompleteDelayMS) * time.Millisecond,
		obstacles:   spec.ObstacleBoxes(),
		complete:    complete,
	}
	l.gesture = NewGesture(func() {
		l.log.Infow("stirring finished", "delay", l.delay)
		l.sched.After(l.delay, l.complete)
	})
	l.check()
	return l
}

func (l *StirLevel) Move(dir Direction) {
	l.mover.Step(dir)
	l.check()
}

func (l *StirLevel) check() {
	if l.carrying {
		return
	}
	if WithinDist(l.mover.Center(), Center(l.spoonPos), l.pickupRange) {
		l.carrying = true
		l.log.Debugw("picked up spoon", "pos", l.mover.Pos)
	}
}

// gated reports whether drag motion currently counts toward progress.
func (l *StirLevel) gated() bool {
	return l.carrying && WithinDist(l.mover.Center(), Center(l.potPos), l.stirRange)
}

// PointerDown starts a drag only when it lands inside the pot's hit region;
// anything else is a silent no-op.
func (l *StirLevel) PointerDown(p cp.Vector) {
	if !l.potHit.ContainsVect(p) {
		return
	}
	l.gesture.Begin(p)
}

func (l *StirLevel) PointerMove(p cp.Vector) {
	l.gesture.Move(p, l.gated())
}

func (l *StirLevel) PointerUp() {
	l.gesture.End()
}

func (l *StirLevel) PointerCancel() {
	l.gesture.End()
}

func (l *StirLevel) Submit(string) {}

// Carrying reports whether the spoon is in hand.
func (l *StirLevel) Carrying() bool {
	return l.carrying
}

// Progress returns the raw stir progress.
func (l *StirLevel) Progress() float64 {
	return l.gesture.Progress()
}

func (l *StirLevel) fill(snap *Snapshot) {
	snap.Level = "stir"
	snap.Player = l.mover.Pos
	snap.Facing = l.mover.Facing
	if l.carrying {
		snap.Carrying = ItemSpoon
	}
	snap.StirProgress = l.gesture.Display()
	snap.Stirring = l.gesture.Active() && l.gated()
	snap.Obstacles = l.obstacles
	snap.Props = []Prop{
		{Kind: "spoon", Pos: l.spoonPos, Taken: l.carrying},
		{Kind: "pot", Pos: l.potPos},
	}
}
