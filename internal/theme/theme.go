package theme

import (
	"image/color"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

type Theme interface {
	NoteSymbol(kind game.Kind) string
	NoteColor(lane game.Key, kind game.Kind) color.RGBA
	HoldBody() string
	TargetSymbol(lane game.Key) string
	JudgementColor(name string) color.RGBA
}
