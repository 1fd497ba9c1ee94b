package core

// Action is a player intent, decoupled from the key or button behind it.
type Action int

const (
	ActionNone    Action = iota
	ActionThrust         // w, up, space
	ActionEase           // s, down
	ActionPause          // p, esc, left click
	ActionRestart        // r, only after game over
	ActionQuit           // q, ctrl+c

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionThrust:  "Thrust",
	ActionEase:    "Ease",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame counts the actions received between two ticks. Several
// thrust presses can arrive within one tick and each adds an impulse.
//
// The zero value is an empty frame. Frames are plain values, so copying
// one snapshots it.
type InputFrame struct {
	counts [actionCount]int
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records one occurrence of a. Unknown actions are dropped.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.counts[a]++
	}
}

// Has reports whether a occurred at least once.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how often a occurred.
func (f InputFrame) Count(a Action) int {
	if a < 0 || a >= actionCount {
		return 0
	}
	return f.counts[a]
}

func (f *InputFrame) Clear() {
	f.counts = [actionCount]int{}
}

