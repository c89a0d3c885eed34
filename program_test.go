package main

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/logger"
	"git.lost.host/meutraa/shadowdance/internal/score"
	"git.lost.host/meutraa/shadowdance/internal/theme"
)

type fakeRenderer struct {
	frames int
	before func(frame int)
	screen strings.Builder
}

func (r *fakeRenderer) Init() error { return nil }
func (r *fakeRenderer) Deinit() error { return nil }
func (r *fakeRenderer) Size() (int, int) { return 80, 40 }
func (r *fakeRenderer) Clear() { r.screen.Reset() }
func (r *fakeRenderer) AddDecoration(col, row int, s string, n int) {}
func (r *fakeRenderer) Fill(row, column int, message string) { r.screen.WriteString(message + "\n") }
func (r *fakeRenderer) Flush() {}

func (r *fakeRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.Fill(row, column, message)
}

func (r *fakeRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	for {
		r.frames++
		if nil != r.before {
			r.before(r.frames)
		}
		if !render(time.Now()) || r.frames > 10000 {
			return
		}
	}
}

type fakePlayer struct {
	cues []string
}

func (p *fakePlayer) Cue(message string) { p.cues = append(p.cues, message) }
func (p *fakePlayer) Close() {}

func newProgram(t *testing.T, r *fakeRenderer, events chan input.Event) (*Program, *fakePlayer) {
	level, _, err := game.Load(1, 5, game.DefaultFallSpeed, &game.Content{
		Lanes: []game.LaneRecord{{Type: "left", Key: game.KeyLeft, X: 300}},
		Notes: []game.NoteRecord{{Lane: "left", Kind: game.KindNormal, Frame: 0}},
	})
	if nil != err {
		t.Fatal(err)
	}
	player := &fakePlayer{}
	return &Program{
		Renderer: r,
		Theme:    &theme.DefaultTheme{},
		Player:   player,
		Sampler:  input.NewSampler(events, 0),
		Log:      logger.Discard(),
		Level:    level,
	}, player
}

func TestProgramPlaysToTheEnd(t *testing.T) {
	r := &fakeRenderer{}
	p, player := newProgram(t, r, make(chan input.Event, 8))

	if !p.Run(time.Millisecond) {
		t.Fatal("level reported as abandoned")
	}
	if !p.Level.Finished() || p.Level.DidWin() {
		t.Errorf("finished %v, won %v", p.Level.Finished(), p.Level.DidWin())
	}
	if len(player.cues) != 1 || player.cues[0] != score.Miss.Name {
		t.Errorf("cues %v", player.cues)
	}

	waited := false
	p.Results(func() { waited = true })
	if !waited || !strings.Contains(r.screen.String(), "TRY AGAIN") {
		t.Errorf("results screen %q", r.screen.String())
	}
}

func TestProgramHitsOnTime(t *testing.T) {
	events := make(chan input.Event, 8)
	hit := (game.TargetHeight-game.StartHeight)/game.DefaultFallSpeed + 1
	r := &fakeRenderer{before: func(frame int) {
		if frame == hit {
			events <- input.Event{Key: game.KeyLeft, Pressed: true}
		}
	}}
	p, player := newProgram(t, r, events)

	p.Run(time.Millisecond)
	if !p.Level.DidWin() || p.Level.TotalScore() != score.Perfect.Score {
		t.Errorf("score %v", p.Level.TotalScore())
	}
	if len(player.cues) != 1 || player.cues[0] != score.Perfect.Name {
		t.Errorf("cues %v", player.cues)
	}

	p.Results(func() {})
	if !strings.Contains(r.screen.String(), "CLEAR!") {
		t.Errorf("results screen %q", r.screen.String())
	}
}

func TestProgramEscapeQuits(t *testing.T) {
	events := make(chan input.Event, 8)
	r := &fakeRenderer{before: func(frame int) {
		if frame == 3 {
			events <- input.Event{Key: game.KeyEscape, Pressed: true}
		}
	}}
	p, _ := newProgram(t, r, events)

	if p.Run(time.Millisecond) {
		t.Error("escape should abandon the level")
	}
	if p.Level.Finished() || r.frames != 3 {
		t.Errorf("stopped at frame %v", r.frames)
	}
}
