package theme

import (
	"image/color"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

type DefaultTheme struct{}

var (
	symbols = map[game.Kind]string{
		game.KindNormal:      "⬤",
		game.KindHold:        "⬤",
		game.KindBomb:        "✹",
		game.KindDoubleScore: "2",
		game.KindSpeedUp:     "▲",
		game.KindSlowDown:    "▼",
	}
	targetSymbols = map[game.Key]string{
		game.KeyLeft:  "◀",
		game.KeyDown:  "▼",
		game.KeyUp:    "▲",
		game.KeyRight: "▶",
		game.KeySpace: "◆",
	}
	laneColors = map[game.Key]color.RGBA{
		game.KeyLeft:  {236, 30, 0, 255},  // red
		game.KeyDown:  {0, 118, 236, 255}, // blue
		game.KeyUp:    {0, 236, 128, 255}, // green
		game.KeyRight: {236, 195, 0, 255}, // yellow
		game.KeySpace: {106, 0, 236, 255}, // purple
	}
	specialColors = map[game.Kind]color.RGBA{
		game.KindBomb:        {236, 128, 0, 255},   // orange
		game.KindDoubleScore: {236, 0, 106, 255},   // pink
		game.KindSpeedUp:     {173, 236, 236, 255}, // light blue
		game.KindSlowDown:    {110, 147, 89, 255},  // olive
	}
	judgementColors = map[string]color.RGBA{
		"PERFECT": {173, 236, 236, 255},
		"GOOD":    {0, 236, 128, 255},
		"BAD":     {236, 195, 0, 255},
		"MISS":    {236, 30, 0, 255},
	}
	white = color.RGBA{255, 255, 255, 255}
)

func (t *DefaultTheme) NoteSymbol(kind game.Kind) string {
	if s, ok := symbols[kind]; ok {
		return s
	}
	return "?"
}

func (t *DefaultTheme) NoteColor(lane game.Key, kind game.Kind) color.RGBA {
	if c, ok := specialColors[kind]; ok {
		return c
	}
	if c, ok := laneColors[lane]; ok {
		return c
	}
	return white
}

func (t *DefaultTheme) HoldBody() string {
	return "┃"
}

func (t *DefaultTheme) TargetSymbol(lane game.Key) string {
	if s, ok := targetSymbols[lane]; ok {
		return s
	}
	return "-"
}

// Activation messages of special notes are drawn white
func (t *DefaultTheme) JudgementColor(name string) color.RGBA {
	if c, ok := judgementColors[name]; ok {
		return c
	}
	return white
}
