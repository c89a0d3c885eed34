package game

// SpecialDistance is the single activation band of special notes.
const SpecialDistance = 50

// DoubleScoreDuration is how many frames a double score note lasts
const DoubleScoreDuration = 480

type effect struct {
	score   int
	message string
	apply   func(lane *Lane, mods Modifiers)
}

var effects = map[Kind]effect{
	KindBomb: {
		message: "LANE CLEAR",
		apply: func(lane *Lane, mods Modifiers) {
			lane.Bomb()
		},
	},
	KindDoubleScore: {
		message: "DOUBLE SCORE",
		apply: func(lane *Lane, mods Modifiers) {
			mods.ActivateDoubleScore(DoubleScoreDuration)
		},
	},
	KindSpeedUp: {
		score:   15,
		message: "SPEED UP",
		apply: func(lane *Lane, mods Modifiers) {
			mods.SetFallSpeed(mods.FallSpeed() + 1)
		},
	},
	KindSlowDown: {
		score:   15,
		message: "SLOW DOWN",
		apply: func(lane *Lane, mods Modifiers) {
			mods.SetFallSpeed(mods.FallSpeed() - 1)
		},
	},
}

func (n *Note) checkSpecial(ctx *Context, lane *Lane) Result {
	distance := TargetHeight - n.height
	if distance < 0 {
		distance = -distance
	}

	if n.height >= TargetHeight && distance > SpecialDistance {
		// Missed, no effect
		n.Deactivate()
	} else if ctx.Input.WasPressed(lane.key) && distance <= SpecialDistance {
		e := effects[n.kind]
		e.apply(lane, ctx.Mods)
		ctx.notify(e.message)
		n.Deactivate()
		return Result{Points: e.score}
	}

	return Result{}
}
