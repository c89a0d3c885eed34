package game

// Modifiers is the level-wide state special notes are allowed to change.
type Modifiers interface {
	FallSpeed() int
	SetFallSpeed(speed int)
	ActivateDoubleScore(duration int)
}

// Lane is a single key-bound column of notes, sorted by appearance frame.
type Lane struct {
	name string
	key  Key
	x    int

	notes []*Note

	// Index of the earliest note not yet completed, the only one scored
	pointer      int
	pendingClear bool
}

func NewLane(name string, key Key, x int) *Lane {
	return &Lane{name: name, key: key, x: x}
}

func (l *Lane) Name() string { return l.name }
func (l *Lane) Key() Key { return l.key }
func (l *Lane) X() int { return l.x }
func (l *Lane) Notes() []*Note { return l.notes }
func (l *Lane) Pointer() int { return l.pointer }

func (l *Lane) AddNote(n *Note) {
	l.notes = append(l.notes, n)
}

// Bomb clears every visible note once the current note completes.
func (l *Lane) Bomb() {
	l.pendingClear = true
}

func (l *Lane) Finished() bool {
	for _, n := range l.notes {
		if !n.completed {
			return false
		}
	}
	return true
}

// Visible returns the active notes from the current note onward.
func (l *Lane) Visible() []*Note {
	visible := []*Note{}
	for _, n := range l.notes[l.pointer:] {
		if n.active {
			visible = append(visible, n)
		}
	}
	return visible
}

// Update moves every note and scores the current one.
func (l *Lane) Update(ctx *Context) Result {
	fallSpeed := ctx.Mods.FallSpeed()
	for _, n := range l.notes {
		n.Update(ctx.Frame, fallSpeed)
	}

	if l.pointer >= len(l.notes) {
		return Result{}
	}

	note := l.notes[l.pointer]
	result := note.CheckScore(ctx, l)
	if note.completed {
		if l.pendingClear {
			// Only notes already on screen are cleared
			for _, n := range l.notes[l.pointer:] {
				if n.active {
					n.Deactivate()
				}
			}
			l.pendingClear = false
		}
		l.advance()
	}
	return result
}

// skip notes completed elsewhere, e.g. by an enemy
func (l *Lane) advance() {
	for l.pointer < len(l.notes) && l.notes[l.pointer].completed {
		l.pointer++
	}
}
