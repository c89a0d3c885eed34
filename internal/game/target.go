package game

// Target is a plain note exposed to a Peripheral at its screen position.
type Target struct {
	X, Y int
	note *Note
}

// Deactivate removes the note from play with no score.
func (t Target) Deactivate() {
	t.note.Deactivate()
}

func (t Target) Completed() bool {
	return t.note.completed
}
