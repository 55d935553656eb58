package parameter

import "time"

// Keyboard hold emulation
// Terminals report presses and auto-repeats but never releases
const (
	// KeyHoldWindow keeps a repeating key held between auto-repeat events
	KeyHoldWindow = 120 * time.Millisecond

	// KeyRepeatDelay keeps a single press held until the terminal starts repeating
	KeyRepeatDelay = 550 * time.Millisecond
)

// Mouse steering
const (
	// MouseSteerZone is the fraction of the screen width on each side that steers
	MouseSteerZone = 0.4

	// MouseThrottleStep is the largest throttle change per poll while the button is held
	MouseThrottleStep = 0.25
)
