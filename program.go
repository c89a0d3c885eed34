package main

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/shadowdance/internal/audio"
	"git.lost.host/meutraa/shadowdance/internal/combat"
	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/logger"
	"git.lost.host/meutraa/shadowdance/internal/render"
	"git.lost.host/meutraa/shadowdance/internal/score"
	"git.lost.host/meutraa/shadowdance/internal/theme"
)

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Player   audio.Player
	Sampler  *input.Sampler
	Log      *logger.Logger

	Level *game.Level
	// Nil unless the level runs the side game
	Field *combat.Field

	notice        score.Notification
	columns, rows int
	sideCol       int
	stolen        int
	quit          bool
}

// Map field coordinates onto the terminal grid
func (p *Program) row(y int) int {
	return 2 + y*(p.rows-3)/combat.Height
}

func (p *Program) col(x int) int {
	return 1 + x*(p.columns-2)/combat.Width
}

func (p *Program) inField(row int) bool {
	return row > 1 && row < p.rows
}

// Run plays the level until it finishes or escape is pressed. It reports
// whether the level was played to the end.
func (p *Program) Run(period time.Duration) bool {
	p.columns, p.rows = p.Renderer.Size()
	p.sideCol = p.columns - 22
	if p.sideCol < 2 {
		p.sideCol = 2
	}

	p.Renderer.RenderLoop(period, func(now time.Time) bool {
		sample := p.Sampler.Sample(now)
		if sample.WasPressed(game.KeyEscape) {
			p.quit = true
			return false
		}

		p.Level.Update(sample, &p.notice)
		if p.notice.Fresh() {
			p.Player.Cue(p.notice.Message)
		}

		p.Renderer.Clear()
		p.renderLanes()
		if nil != p.Field {
			p.renderField()
		}
		p.renderStatus()

		return !p.Level.Finished()
	})

	p.notice.Reset()
	return !p.quit
}

func (p *Program) renderLanes() {
	target := p.row(game.TargetHeight)
	for _, lane := range p.Level.Lanes() {
		col := p.col(lane.X())
		p.Renderer.Fill(target, col, p.Theme.TargetSymbol(lane.Key()))

		for _, n := range lane.Visible() {
			color := p.Theme.NoteColor(lane.Key(), n.Kind())
			if n.Kind() == game.KindHold {
				top, bottom := n.Span()
				for r := p.row(top); r < p.row(bottom); r++ {
					if p.inField(r) {
						p.Renderer.FillColor(r, col, color, p.Theme.HoldBody())
					}
				}
				if r := p.row(bottom); p.inField(r) && !n.HeadPressed() {
					p.Renderer.FillColor(r, col, color, p.Theme.NoteSymbol(n.Kind()))
				}
				continue
			}
			if r := p.row(n.Height()); p.inField(r) {
				p.Renderer.FillColor(r, col, color, p.Theme.NoteSymbol(n.Kind()))
			}
		}
	}
}

func (p *Program) renderField() {
	if stolen := p.Field.Stolen(); stolen > p.stolen {
		p.Log.Debugf("frame %v: %v notes stolen", p.Level.Frame(), stolen-p.stolen)
		p.Renderer.AddDecoration(p.col(combat.GuardianX)-3, p.row(combat.GuardianY)+1, "STOLEN", 60)
		p.stolen = stolen
	}
	for _, e := range p.Field.Enemies() {
		if e.Alive() {
			p.Renderer.Fill(p.row(int(e.Y)), p.col(int(e.X)), "☠")
		}
	}
	for _, pr := range p.Field.Projectiles() {
		p.Renderer.Fill(p.row(int(pr.Y)), p.col(int(pr.X)), "•")
	}
	p.Renderer.Fill(p.row(combat.GuardianY), p.col(combat.GuardianX), "♜")
}

func (p *Program) renderStatus() {
	p.Renderer.Fill(1, 2, fmt.Sprintf("LEVEL %v  SCORE %v / %v", p.Level.Number(), p.Level.TotalScore(), p.Level.Threshold()))
	p.Renderer.Fill(2, p.sideCol, fmt.Sprintf("Speed: %3v", p.Level.FallSpeed()))
	if m := p.Level.Multiplier(); m > 1 {
		p.Renderer.Fill(3, p.sideCol, fmt.Sprintf("Score x%v", m))
	}
	if nil != p.Field {
		p.Renderer.Fill(4, p.sideCol, fmt.Sprintf("Stolen: %3v", p.Field.Stolen()))
	}

	if msg, ok := p.notice.Shown(); ok {
		p.Renderer.FillColor(p.rows/2, p.columns/2-len(msg)/2, p.Theme.JudgementColor(msg), msg)
	}
}

// Results draws the end of level screen and waits for a key.
func (p *Program) Results(wait func()) {
	p.Renderer.Clear()

	title := "TRY AGAIN"
	if p.Level.DidWin() {
		title = "CLEAR!"
	}
	mid := p.columns / 2
	top := p.rows/2 - 4
	p.Renderer.Fill(top, mid-len(title)/2, title)
	p.Renderer.Fill(top+2, mid-8, fmt.Sprintf("Score: %8v", p.Level.TotalScore()))

	tally := p.Level.Tally()
	for i, j := range score.Judgements {
		p.Renderer.FillColor(top+4+i, mid-8, p.Theme.JudgementColor(j.Name), fmt.Sprintf("%-7v %8v", j.Name, tally.Count(j)))
	}
	p.Renderer.Fill(top+9, mid-10, "Press any key to exit")
	p.Renderer.Flush()

	wait()
}
