package game

import "git.lost.host/meutraa/shadowdance/internal/score"

const DefaultFallSpeed = 2

// Peripheral is a side game run inside the level's frame, e.g. enemies
// stealing notes. It only ever sees the plain notes on screen.
type Peripheral interface {
	Update(frame int, input Sample, targets []Target)
}

type Level struct {
	number    int
	threshold int

	lanes      []*Lane
	peripheral Peripheral

	frame        int
	fallSpeed    int
	doubleScores []int // Remaining frames of each active double score
	total        int
	tally        score.Tally
}

func NewLevel(number, threshold, fallSpeed int) *Level {
	l := &Level{number: number, threshold: threshold}
	l.SetFallSpeed(fallSpeed)
	return l
}

func (l *Level) Number() int { return l.number }
func (l *Level) Threshold() int { return l.threshold }
func (l *Level) Frame() int { return l.frame }
func (l *Level) TotalScore() int { return l.total }
func (l *Level) Lanes() []*Lane { return l.lanes }
func (l *Level) Tally() score.Tally { return l.tally }
func (l *Level) FallSpeed() int { return l.fallSpeed }
func (l *Level) DoubleScores() []int { return l.doubleScores }

func (l *Level) AddLane(lane *Lane) {
	l.lanes = append(l.lanes, lane)
}

func (l *Level) Attach(p Peripheral) {
	l.peripheral = p
}

func (l *Level) SetFallSpeed(speed int) {
	if speed < 1 {
		speed = 1
	}
	l.fallSpeed = speed
}

// ActivateDoubleScore starts another independent doubling of the score.
func (l *Level) ActivateDoubleScore(duration int) {
	l.doubleScores = append(l.doubleScores, duration)
}

// Multiplier doubles once for every active double score.
func (l *Level) Multiplier() int {
	return 1 << len(l.doubleScores)
}

func (l *Level) Finished() bool {
	for _, lane := range l.lanes {
		if !lane.Finished() {
			return false
		}
	}
	return true
}

func (l *Level) DidWin() bool {
	return l.total >= l.threshold
}

// Targets are the plain notes currently on screen, positioned by their lane.
func (l *Level) Targets() []Target {
	targets := []Target{}
	for _, lane := range l.lanes {
		for _, n := range lane.Visible() {
			if n.kind != KindNormal {
				continue
			}
			targets = append(targets, Target{X: lane.x, Y: n.height, note: n})
		}
	}
	return targets
}

func (l *Level) decayDoubleScores() {
	remaining := l.doubleScores[:0]
	for _, d := range l.doubleScores {
		if d--; d > 0 {
			remaining = append(remaining, d)
		}
	}
	l.doubleScores = remaining
}

// Update runs a single frame. The order of the steps is what makes a double
// score picked up in one lane apply to the lanes after it in the same frame.
func (l *Level) Update(input Sample, notice *score.Notification) {
	if l.Finished() {
		return
	}

	l.frame++

	if nil != l.peripheral {
		l.peripheral.Update(l.frame, input, l.Targets())
	}

	l.decayDoubleScores()

	ctx := &Context{
		Frame:  l.frame,
		Input:  input,
		Mods:   l,
		Notice: notice,
	}
	for _, lane := range l.lanes {
		result := lane.Update(ctx)
		l.total += result.Points * l.Multiplier()
		l.tally.Add(result.Judgement)
	}

	if nil != notice {
		notice.Tick()
	}
}
