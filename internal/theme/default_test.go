package theme

import (
	"testing"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

func TestSpecialNotesStandOut(t *testing.T) {
	th := &DefaultTheme{}
	for _, kind := range []game.Kind{game.KindBomb, game.KindDoubleScore, game.KindSpeedUp, game.KindSlowDown} {
		if th.NoteColor(game.KeySpace, kind) == th.NoteColor(game.KeySpace, game.KindNormal) {
			t.Errorf("%v drawn like a plain note", kind)
		}
		if th.NoteSymbol(kind) == th.NoteSymbol(game.KindNormal) {
			t.Errorf("%v uses the plain note symbol", kind)
		}
	}
	if th.JudgementColor("LANE CLEAR") != white {
		t.Error("activation messages should be white")
	}
}
