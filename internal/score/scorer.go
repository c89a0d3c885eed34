package score

// Distances are measured in pixels between a note edge and the target line.
const (
	PerfectDistance = 15
	GoodDistance    = 50
	BadDistance     = 100
	MissDistance    = 200
)

type Judgement struct {
	Name  string
	Score int
}

var (
	Perfect = Judgement{Name: "PERFECT", Score: 10}
	Good    = Judgement{Name: "GOOD", Score: 5}
	Bad     = Judgement{Name: "BAD", Score: -1}
	Miss    = Judgement{Name: "MISS", Score: -5}

	// NotScored is returned when nothing happened this frame
	NotScored = Judgement{}

	// Judgements in order of increasing distance
	Judgements = []Judgement{Perfect, Good, Bad, Miss}
)

func (j Judgement) Scored() bool {
	return j != NotScored
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Evaluate judges a note edge at height against the target line.
// A note that has fallen more than BadDistance past the target is a miss
// whether or not it was triggered.
func Evaluate(height, target int, triggered bool) Judgement {
	distance := abs(target - height)

	if height >= target && distance > BadDistance {
		return Miss
	}

	if !triggered {
		return NotScored
	}

	switch {
	case distance <= PerfectDistance:
		return Perfect
	case distance <= GoodDistance:
		return Good
	case distance <= BadDistance:
		return Bad
	case distance <= MissDistance:
		return Miss
	}
	return NotScored
}
