package game

import (
	"testing"

	"git.lost.host/meutraa/shadowdance/internal/score"
)

func TestSpecialNoteEffects(t *testing.T) {
	tests := []struct {
		kind      Kind
		points    int
		message   string
		fallSpeed int
		timers    int
		bombed    bool
	}{
		{kind: KindBomb, points: 0, message: "LANE CLEAR", fallSpeed: 2, bombed: true},
		{kind: KindDoubleScore, points: 0, message: "DOUBLE SCORE", fallSpeed: 2, timers: 1},
		{kind: KindSpeedUp, points: 15, message: "SPEED UP", fallSpeed: 3},
		{kind: KindSlowDown, points: 15, message: "SLOW DOWN", fallSpeed: 1},
	}

	for _, test := range tests {
		lane := NewLane("Special", KeySpace, 500)
		mods := &fakeMods{fallSpeed: 2}
		ctx := &Context{Input: Sample{}.Press(KeySpace), Mods: mods, Notice: &score.Notification{}}

		n := NewNote(test.kind, 0)
		place(n, TargetHeight+SpecialDistance)
		result := n.CheckScore(ctx, lane)

		if result.Points != test.points || result.Judgement.Scored() {
			t.Errorf("%v: result %v", test.kind, result)
		}
		if !n.Completed() {
			t.Errorf("%v: not completed after activation", test.kind)
		}
		if ctx.Notice.Message != test.message {
			t.Errorf("%v: message %q", test.kind, ctx.Notice.Message)
		}
		if mods.fallSpeed != test.fallSpeed {
			t.Errorf("%v: fall speed %v", test.kind, mods.fallSpeed)
		}
		if len(mods.doubleScores) != test.timers {
			t.Errorf("%v: %v double scores", test.kind, len(mods.doubleScores))
		}
		if test.timers > 0 && mods.doubleScores[0] != DoubleScoreDuration {
			t.Errorf("%v: double score lasts %v", test.kind, mods.doubleScores[0])
		}
		if lane.pendingClear != test.bombed {
			t.Errorf("%v: pending clear %v", test.kind, lane.pendingClear)
		}
	}
}

func TestSpecialNoteOutsideBand(t *testing.T) {
	lane := NewLane("Special", KeySpace, 500)

	// pressed too early: nothing happens
	mods := &fakeMods{fallSpeed: 2}
	early := NewNote(KindSpeedUp, 0)
	place(early, TargetHeight-SpecialDistance-1)
	ctx := &Context{Input: Sample{}.Press(KeySpace), Mods: mods}
	if r := early.CheckScore(ctx, lane); r != (Result{}) || early.Completed() || mods.fallSpeed != 2 {
		t.Errorf("early press activated: %v", r)
	}

	// fallen past the band: silently missed, no effect
	missed := NewNote(KindSpeedUp, 0)
	place(missed, TargetHeight+SpecialDistance+1)
	ctx = &Context{Input: Sample{}.Press(KeySpace), Mods: mods, Notice: &score.Notification{}}
	if r := missed.CheckScore(ctx, lane); r != (Result{}) || !missed.Completed() || mods.fallSpeed != 2 {
		t.Errorf("missed special: %v completed=%v speed=%v", r, missed.Completed(), mods.fallSpeed)
	}
	if ctx.Notice.Message != "" {
		t.Errorf("missed special set message %q", ctx.Notice.Message)
	}
}

func TestSlowDownFloor(t *testing.T) {
	level := NewLevel(1, 0, 3)
	lane := NewLane("Special", KeySpace, 500)
	for i := 0; i < 6; i++ {
		n := NewNote(KindSlowDown, 0)
		place(n, TargetHeight)
		ctx := &Context{Input: Sample{}.Press(KeySpace), Mods: level}
		n.CheckScore(ctx, lane)
		if level.FallSpeed() < 1 {
			t.Fatalf("fall speed dropped to %v", level.FallSpeed())
		}
	}
	if level.FallSpeed() != 1 {
		t.Errorf("fall speed %v, want 1", level.FallSpeed())
	}

	level.SetFallSpeed(-10)
	if level.FallSpeed() != 1 {
		t.Errorf("SetFallSpeed(-10) gave %v", level.FallSpeed())
	}
	if NewLevel(1, 0, 0).FallSpeed() != 1 {
		t.Error("new level must clamp its fall speed")
	}
}
