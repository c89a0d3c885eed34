package score

// MessageFrames is how many ticks a message stays on screen
const MessageFrames = 30

// Notification is the single on-screen message slot. Setting a message
// replaces whatever is showing.
type Notification struct {
	Message         string
	FramesRemaining int

	shown bool
}

func (n *Notification) Set(message string) {
	n.Message = message
	n.FramesRemaining = MessageFrames
}

func (n *Notification) Reset() {
	n.Message = ""
	n.FramesRemaining = 0
	n.shown = false
}

// Tick counts down one frame and returns the message to draw this frame, if any.
func (n *Notification) Tick() (string, bool) {
	if n.Message == "" || n.FramesRemaining <= 0 {
		n.shown = false
		return "", false
	}
	n.FramesRemaining--
	n.shown = true
	return n.Message, true
}

// Shown returns what the last Tick decided to draw.
func (n *Notification) Shown() (string, bool) {
	if !n.shown {
		return "", false
	}
	return n.Message, true
}

// Fresh reports whether the message was set during the frame just ticked.
func (n *Notification) Fresh() bool {
	return n.shown && n.FramesRemaining == MessageFrames-1
}
