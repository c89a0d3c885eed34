package game

import (
	"strings"

	"git.lost.host/meutraa/shadowdance/internal/score"
)

type Kind uint8

const (
	KindNormal Kind = iota
	KindHold
	KindBomb
	KindDoubleScore
	KindSpeedUp
	KindSlowDown
)

var kindNames = [...]string{"Normal", "Hold", "Bomb", "DoubleScore", "SpeedUp", "SlowDown"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind maps a note kind from level content, case insensitively.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if strings.EqualFold(name, s) {
			return Kind(i), true
		}
	}
	return 0, false
}

// Special reports whether the kind is a one-shot effect note.
func (k Kind) Special() bool {
	_, ok := effects[k]
	return ok
}

const (
	StartHeight  = 100 // y of a freshly appeared note
	TargetHeight = 657 // y of the target line
)

// Context is threaded through every update call of a single frame.
type Context struct {
	Frame  int
	Input  Sample
	Mods   Modifiers
	Notice *score.Notification
}

func (c *Context) notify(message string) {
	if nil != c.Notice {
		c.Notice.Set(message)
	}
}

// Result is what scoring a note produced this frame. Judgement is NotScored
// for special notes, which award fixed points instead of a tier.
type Result struct {
	Points    int
	Judgement score.Judgement
}

type Note struct {
	kind       Kind
	appearance int // The frame the note becomes active on

	// This is state
	height    int
	active    bool
	completed bool
	pressed   bool // Hold notes only, the head has been scored
}

func NewNote(kind Kind, appearance int) *Note {
	height := StartHeight
	if kind == KindHold {
		height = HoldStartHeight
	}
	return &Note{
		kind:       kind,
		appearance: appearance,
		height:     height,
	}
}

func (n *Note) Kind() Kind { return n.kind }
func (n *Note) Height() int { return n.height }
func (n *Note) Active() bool { return n.active }
func (n *Note) Completed() bool { return n.completed }
func (n *Note) HeadPressed() bool { return n.pressed }

// Deactivate completes the note without scoring it.
func (n *Note) Deactivate() {
	n.active = false
	n.completed = true
}

// Update falls an active note and activates it once its frame has come.
func (n *Note) Update(frame, fallSpeed int) {
	if n.active {
		n.height += fallSpeed
	}

	if frame >= n.appearance && !n.completed {
		n.active = true
	}
}

// CheckScore scores the note against the lane's key for this frame.
func (n *Note) CheckScore(ctx *Context, lane *Lane) Result {
	if !n.active {
		return Result{}
	}

	switch n.kind {
	case KindNormal:
		return n.checkNormal(ctx, lane.key)
	case KindHold:
		return n.checkHold(ctx, lane.key)
	default:
		return n.checkSpecial(ctx, lane)
	}
}

func (n *Note) checkNormal(ctx *Context, key Key) Result {
	j := score.Evaluate(n.height, TargetHeight, ctx.Input.WasPressed(key))
	if j.Scored() {
		ctx.notify(j.Name)
		n.Deactivate()
	}
	return Result{Points: j.Score, Judgement: j}
}
