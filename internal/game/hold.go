package game

import "git.lost.host/meutraa/shadowdance/internal/score"

const (
	HoldStartHeight = 24
	HoldEdgeOffset  = 82 // Half the length of a hold note
)

// The tail of a hold note, scored on release
func (n *Note) topEdge() int {
	return n.height - HoldEdgeOffset
}

// The head of a hold note, scored on press
func (n *Note) bottomEdge() int {
	return n.height + HoldEdgeOffset
}

// Span returns the tail and head heights of a hold note.
func (n *Note) Span() (top, bottom int) {
	return n.topEdge(), n.bottomEdge()
}

func (n *Note) checkHold(ctx *Context, key Key) Result {
	var j score.Judgement

	if n.pressed {
		j = score.Evaluate(n.topEdge(), TargetHeight, ctx.Input.WasReleased(key))
		if j.Scored() {
			n.Deactivate()
		}
	} else {
		j = score.Evaluate(n.bottomEdge(), TargetHeight, ctx.Input.WasPressed(key))
		if j == score.Miss {
			n.Deactivate()
		} else if j.Scored() {
			n.pressed = true
		}
	}

	if j.Scored() {
		ctx.notify(j.Name)
	}
	return Result{Points: j.Score, Judgement: j}
}
