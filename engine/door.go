package engine

import (
	"github.com/jakecoffman/cp"
	"github.com/junipergames/cauldron/levelspec"
	"go.uber.org/zap"
)

// promptError is shown when a submission has too few words.
const promptError = "needs at least 2 words"

// DoorLevel: reach the door and answer its prompt. Opening the prompt is
// one-shot and freezes movement; submissions are retryable until one has
// enough words, which completes the level immediately.
type DoorLevel struct {
	mover *Mover
	log   *zap.SugaredLogger

	doorPos   cp.Vector
	openRange float64

	obstacles  []cp.BB
	promptOpen bool
	errMsg     string

	complete func()
}

func NewDoorLevel(spec *levelspec.LevelSpec, _ *Scheduler, log *zap.SugaredLogger, complete func()) *DoorLevel {
	l := &DoorLevel{
		mover:     NewMover(spec.Spawn.Vector(), spec.ObstacleBoxes()),
		log:       log,
		doorPos:   spec.Door.Vector(),
		openRange: spec.OpenRange,
		obstacles: spec.ObstacleBoxes(),
		complete:  complete,
	}
	l.check()
	return l
}

func (l *DoorLevel) Move(dir Direction) {
	if l.promptOpen {
		return
	}
	l.mover.Step(dir)
	l.check()
}

func (l *DoorLevel) check() {
	if l.promptOpen {
		return
	}
	if WithinDist(l.mover.Center(), Center(l.doorPos), l.openRange) {
		l.promptOpen = true
		l.log.Debugw("door prompt opened", "pos", l.mover.Pos)
	}
}

// Submit feeds a free-form answer to the open prompt. Too few words sets a
// validation message and keeps the prompt open.
func (l *DoorLevel) Submit(text string) {
	if !l.promptOpen {
		return
	}
	if WordCount(text) < MinPromptWords {
		l.errMsg = promptError
		return
	}
	l.errMsg = ""
	l.log.Infow("door prompt answered", "words", WordCount(text))
	l.complete()
}

func (l *DoorLevel) PointerDown(cp.Vector) {}
func (l *DoorLevel) PointerMove(cp.Vector) {}
func (l *DoorLevel) PointerUp()            {}
func (l *DoorLevel) PointerCancel()        {}

// PromptOpen reports whether the prompt is accepting input.
func (l *DoorLevel) PromptOpen() bool {
	return l.promptOpen
}

// Error returns the current validation message, if any.
func (l *DoorLevel) Error() string {
	return l.errMsg
}

func (l *DoorLevel) fill(snap *Snapshot) {
	snap.Level = "door"
	snap.Player = l.mover.Pos
	snap.Facing = l.mover.Facing
	snap.PlayerHidden = l.promptOpen
	snap.PromptOpen = l.promptOpen
	snap.PromptError = l.errMsg
	snap.Obstacles = l.obstacles
	snap.Props = []Prop{{Kind: "door", Pos: l.doorPos}}
}
