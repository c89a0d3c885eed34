package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine wave that fades out linearly over its length
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newTone(freq float64, length time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(length), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		fade := 1 - float64(t.position)/float64(t.length)
		v := math.Sin(2*math.Pi*t.phase) * fade
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
