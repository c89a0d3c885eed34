package testdata

import (
	"io"
	"strings"
)

// Level is a small level using every lane and note kind, with a few
// records the loader has to skip.
const Level = `Lane,Left,284
Lane,Down,384
Lane,Up,484
Lane,Right,584
Lane,Special,684
Left,Normal,20
Down,Hold,40
Up,Normal,60
Right,Normal,80
Special,SpeedUp,100
Left,Normal,140
# comment lines are ignored
Special,DoubleScore,160
Left,Mine,170
Sideways,Normal,180
Up,Normal,soon
Lane,Left,900
Lane,Diagonal,100
Right,Hold,200,extra
Special,Bomb,260
Down,Normal,120
Special,SlowDown,300
`

// Counts of the valid records in Level
const (
	LevelLanes = 5
	LevelNotes = 10
	LevelSkips = 6
)

func Reader() io.Reader {
	return strings.NewReader(Level)
}
