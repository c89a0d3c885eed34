package game

import "strings"

type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyFire
	KeyEscape
)

var keyNames = map[Key]string{
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeySpace:  "Space",
	KeyFire:   "Fire",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "None"
}

// LaneKey maps a lane type from level content to the key that plays it.
func LaneKey(laneType string) (Key, bool) {
	switch strings.ToLower(laneType) {
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	case "up":
		return KeyUp, true
	case "down":
		return KeyDown, true
	case "special":
		return KeySpace, true
	}
	return KeyNone, false
}

// Sample is the input state for a single frame: which keys went down and
// which came up since the previous frame.
type Sample struct {
	pressed  uint32
	released uint32
}

func (s Sample) Press(keys ...Key) Sample {
	for _, k := range keys {
		s.pressed |= 1 << k
	}
	return s
}

func (s Sample) Release(keys ...Key) Sample {
	for _, k := range keys {
		s.released |= 1 << k
	}
	return s
}

func (s Sample) WasPressed(k Key) bool {
	return s.pressed&(1<<k) != 0
}

func (s Sample) WasReleased(k Key) bool {
	return s.released&(1<<k) != 0
}

func (s Sample) Empty() bool {
	return s.pressed == 0 && s.released == 0
}

// AnyPressed reports whether any key went down.
func (s Sample) AnyPressed() bool {
	return s.pressed != 0
}
