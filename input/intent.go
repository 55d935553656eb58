package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Flight intents, held while the key repeats
	IntentThrottle   // Up, w, k, Space
	IntentSteerLeft  // Left, a, h
	IntentSteerRight // Right, d, l

	// Flight intents, instantaneous
	IntentThrottleCut // Down, s, j

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentRestart    // r
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Mouse
	IntentMouse // Any mouse event; steering comes from position
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentThrottle:    "throttle",
	IntentSteerLeft:   "steer_left",
	IntentSteerRight:  "steer_right",
	IntentThrottleCut: "throttle_cut",
	IntentQuit:        "quit",
	IntentRestart:     "restart",
	IntentToggleMute:  "toggle_mute",
	IntentResize:      "resize",
	IntentMouse:       "mouse",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
