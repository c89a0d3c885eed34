package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

const cueLength = 60 * time.Millisecond

// Cue pitches per notification message
var cues = map[string]float64{
	"PERFECT": 1318.5,
	"GOOD":    987.8,
	"BAD":     523.3,
	"MISS":    196.0,
}

const effectPitch = 1568.0

type Player interface {
	Cue(message string)
	Close()
}

type DefaultPlayer struct {
	rate    beep.SampleRate
	enabled bool
	music   beep.StreamSeekCloser
}

// Replaced in tests
var speakerInit = speaker.Init

// Init opens the speaker and starts the music, if any. Without a working
// speaker the player stays silent.
func (p *DefaultPlayer) Init(musicFile string) error {
	p.rate = beep.SampleRate(44100)

	if musicFile != "" {
		f, err := os.Open(musicFile)
		if nil != err {
			return fmt.Errorf("unable to open music: %w", err)
		}
		streamer, format, err := mp3.Decode(f)
		if nil != err {
			f.Close()
			return fmt.Errorf("unable to decode music: %w", err)
		}
		p.music = streamer
		p.rate = format.SampleRate
	}

	return p.start()
}

func (p *DefaultPlayer) start() error {
	if err := speakerInit(p.rate, p.rate.N(time.Second/30)); nil != err {
		if nil != p.music {
			p.music.Close()
			p.music = nil
		}
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	p.enabled = true

	if nil != p.music {
		speaker.Play(p.music)
	}
	return nil
}

func (p *DefaultPlayer) Cue(message string) {
	if !p.enabled {
		return
	}
	freq, ok := cues[message]
	if !ok {
		freq = effectPitch
	}
	speaker.Play(&effects.Volume{
		Streamer: newTone(freq, cueLength, p.rate),
		Base:     2,
		Volume:   -2,
	})
}

func (p *DefaultPlayer) Close() {
	if !p.enabled || nil == p.music {
		return
	}
	speaker.Lock()
	p.music.Close()
	speaker.Unlock()
}
