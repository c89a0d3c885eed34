package input

import (
	"time"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

type Event struct {
	Key      game.Key
	Pressed  bool
	Released bool
}

// Source pushes key events from its own goroutine until closed.
type Source interface {
	Start(events chan<- Event) error
	Close() error
}

// Sampler turns the event stream into one game.Sample per frame.
type Sampler struct {
	events <-chan Event

	// Terminals never report key up, so a key counts as released once it
	// has been quiet this long. Zero when the source reports releases.
	releaseAfter time.Duration
	held         map[game.Key]time.Time
}

func NewSampler(events <-chan Event, releaseAfter time.Duration) *Sampler {
	return &Sampler{
		events:       events,
		releaseAfter: releaseAfter,
		held:         map[game.Key]time.Time{},
	}
}

// Sample drains every event received since the last call.
func (s *Sampler) Sample(now time.Time) game.Sample {
	var sample game.Sample

	for {
		select {
		case ev := <-s.events:
			if ev.Pressed {
				sample = sample.Press(ev.Key)
				if s.releaseAfter > 0 {
					s.held[ev.Key] = now
				}
			}
			if ev.Released {
				sample = sample.Release(ev.Key)
			}
			continue
		default:
		}
		break
	}

	for key, last := range s.held {
		if now.Sub(last) >= s.releaseAfter {
			sample = sample.Release(key)
			delete(s.held, key)
		}
	}
	return sample
}
