package game

import (
	"errors"
	"fmt"
)

var ErrEmptyLevel = errors.New("level has no playable notes")

// LaneRecord and NoteRecord are validated level content.
type LaneRecord struct {
	Type string
	Key  Key
	X    int
}

type NoteRecord struct {
	Lane  string
	Kind  Kind
	Frame int
}

type Content struct {
	Lanes []LaneRecord
	Notes []NoteRecord
}

// Load builds a level from content. Notes must already be sorted by frame
// within each lane. Notes for a lane the content does not define are
// skipped and returned as warnings.
func Load(number, threshold, fallSpeed int, content *Content) (*Level, []error, error) {
	level := NewLevel(number, threshold, fallSpeed)

	lanes := map[string]*Lane{}
	for _, r := range content.Lanes {
		lane := NewLane(r.Type, r.Key, r.X)
		lanes[r.Type] = lane
		level.AddLane(lane)
	}

	var skipped []error
	count := 0
	for _, r := range content.Notes {
		lane, ok := lanes[r.Lane]
		if !ok {
			skipped = append(skipped, fmt.Errorf("note at frame %v references unknown lane %q", r.Frame, r.Lane))
			continue
		}
		lane.AddNote(NewNote(r.Kind, r.Frame))
		count++
	}

	if len(level.lanes) == 0 || count == 0 {
		return nil, skipped, fmt.Errorf("level %v: %w", number, ErrEmptyLevel)
	}
	return level, skipped, nil
}
