package input

import (
	"encoding/binary"
	"fmt"
	"os"
	"syscall"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/logger"
)

// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
const (
	evKey = 0x01

	keyEsc       = 1
	keyLeftShift = 42
	keySpace     = 57
	keyUp        = 103
	keyLeft      = 105
	keyRight     = 106
	keyDown      = 108
)

var deviceKeys = map[uint16]game.Key{
	keyEsc:       game.KeyEscape,
	keyLeftShift: game.KeyFire,
	keySpace:     game.KeySpace,
	keyUp:        game.KeyUp,
	keyLeft:      game.KeyLeft,
	keyRight:     game.KeyRight,
	keyDown:      game.KeyDown,
}

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// DeviceSource reads an evdev keyboard, which reports real key releases.
type DeviceSource struct {
	Path string
	Log  *logger.Logger
	file *os.File
}

func (d *DeviceSource) Start(events chan<- Event) error {
	file, err := os.Open(d.Path)
	if nil != err {
		return fmt.Errorf("unable to open input device: %w", err)
	}
	d.file = file

	go func() {
		var ev keyEvent
		for {
			err := binary.Read(file, binary.LittleEndian, &ev)
			if nil != err {
				if nil != d.Log {
					d.Log.Errorf("unable to read %v: %v", d.Path, err)
				}
				return
			}
			if ev.Type != evKey {
				continue
			}
			key, ok := deviceKeys[ev.Code]
			if !ok {
				continue
			}
			// 2 is autorepeat
			if ev.Value == 1 || ev.Value == 0 {
				events <- Event{
					Key:      key,
					Pressed:  ev.Value == 1,
					Released: ev.Value == 0,
				}
			}
		}
	}()
	return nil
}

func (d *DeviceSource) Close() error {
	if nil == d.file {
		return nil
	}
	return d.file.Close()
}
