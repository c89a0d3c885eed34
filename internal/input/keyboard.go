package input

import (
	"fmt"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"github.com/eiannone/keyboard"
)

var keyboardKeys = map[keyboard.Key]game.Key{
	keyboard.KeyArrowLeft:  game.KeyLeft,
	keyboard.KeyArrowRight: game.KeyRight,
	keyboard.KeyArrowUp:    game.KeyUp,
	keyboard.KeyArrowDown:  game.KeyDown,
	keyboard.KeySpace:      game.KeySpace,
	keyboard.KeyEsc:        game.KeyEscape,
	keyboard.KeyCtrlC:      game.KeyEscape,
}

// KeyboardSource reads key presses from the terminal.
type KeyboardSource struct {
	Fire rune
}

func (k *KeyboardSource) translate(ev keyboard.KeyEvent) (game.Key, bool) {
	if ev.Key == 0 {
		if ev.Rune == k.Fire {
			return game.KeyFire, true
		}
		if ev.Rune == ' ' {
			return game.KeySpace, true
		}
		return game.KeyNone, false
	}
	key, ok := keyboardKeys[ev.Key]
	return key, ok
}

func (k *KeyboardSource) Start(events chan<- Event) error {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	go func() {
		for ev := range keys {
			if nil != ev.Err {
				continue
			}
			if key, ok := k.translate(ev); ok {
				events <- Event{Key: key, Pressed: true}
			}
		}
	}()
	return nil
}

func (k *KeyboardSource) Close() error {
	return keyboard.Close()
}

// ReadDigit blocks for a single key press and returns it as a number.
func ReadDigit() (int, error) {
	r, key, err := keyboard.GetSingleKey()
	if nil != err {
		return 0, err
	}
	if key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
		return 0, fmt.Errorf("cancelled")
	}
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%q is not a level number", r)
	}
	return int(r - '0'), nil
}
