package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbRock       = tcell.NewRGBColor(85, 85, 85)    // Canyon fill
	RgbWallEdge   = tcell.NewRGBColor(140, 140, 140) // Lit wall face
	RgbWind       = tcell.NewRGBColor(90, 100, 130)  // Faint streak

	RgbPlane   = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbTurret  = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbBullet  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbRocket  = tcell.NewRGBColor(255, 120, 120) // Bright red
	RgbPickup  = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbHUD     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbGasFull = tcell.NewRGBColor(0, 200, 0)     // Normal green
	RgbGasLow  = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbOverlay = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
)

var (
	styleBase    = tcell.StyleDefault.Background(RgbBackground)
	styleRock    = styleBase.Foreground(RgbRock)
	styleEdge    = styleBase.Foreground(RgbWallEdge)
	styleWind    = styleBase.Foreground(RgbWind)
	stylePlane   = styleBase.Foreground(RgbPlane).Bold(true)
	styleHUD     = styleBase.Foreground(RgbHUD)
	styleOverlay = styleBase.Foreground(RgbOverlay).Bold(true)
)
