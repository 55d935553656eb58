package parameter

import "time"

// Layout
const (
	// BottomMargin holds the HUD line
	BottomMargin = 1

	// GasGaugeWidth is the number of cells in the HUD gas bar
	GasGaugeWidth = 10
)

// Rumble (screen shake on impacts)
const (
	// RumblePerMagnitude is shake cells added per unit impact magnitude
	RumblePerMagnitude = 3.0

	// RumbleDecay is the fraction of shake kept each frame
	RumbleDecay = 0.85

	// RumbleMax caps the horizontal shake in cells
	RumbleMax = 4.0
)

// Wind streaks
const (
	// WindStreakLifetime is how long a streak stays on screen
	WindStreakLifetime = 400 * time.Millisecond

	// WindStreakMax bounds the streaks kept by the renderer
	WindStreakMax = 128
)

// Glyphs
const (
	RockChar       = '▒'
	WallEdgeChar   = '█'
	WindChar       = '·'
	GatlingChar    = 'T'
	RocketSiteChar = 'A'
	BulletChar     = '•'
	PickupChar     = 'G'
)

// Game over overlay
const (
	OverlayHint = "r: restart   q: quit"
)
