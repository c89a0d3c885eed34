package score

// Tally counts judgements per tier, indexed like Judgements.
type Tally struct {
	Counts [4]int
}

func (t *Tally) Add(j Judgement) {
	for i, judgement := range Judgements {
		if judgement == j {
			t.Counts[i]++
			return
		}
	}
}

func (t Tally) Count(j Judgement) int {
	for i, judgement := range Judgements {
		if judgement == j {
			return t.Counts[i]
		}
	}
	return 0
}

func (t Tally) Total() int {
	total := 0
	for _, c := range t.Counts {
		total += c
	}
	return total
}
