package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gasup/engine"
	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/hazard"
	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/physics"
	"github.com/lixenwraith/gasup/terrain"
	"github.com/lixenwraith/gasup/vmath"
)

type streak struct {
	pos, vel vmath.Vec2
	age      float64
}

// TerminalRenderer draws frames onto a tcell screen
// Implements engine.Renderer; owns cosmetic state (camera, rumble, wind streaks)
type TerminalRenderer struct {
	screen  tcell.Screen
	camera  Camera
	rumble  float64
	streaks []streak
	view    View
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Reset clears cosmetic state before a new session
func (r *TerminalRenderer) Reset() {
	r.camera.Reset()
	r.rumble = 0
	r.streaks = r.streaks[:0]
}

// View returns the mapping used by the last rendered frame
func (r *TerminalRenderer) View() View {
	return r.view
}

// Render draws the frame and presents it
func (r *TerminalRenderer) Render(f *engine.Frame) {
	r.absorb(f.Events)
	r.advanceStreaks(parameter.FrameUpdateInterval.Seconds())

	width, height := r.screen.Size()
	rows := height - parameter.BottomMargin
	r.screen.Fill(' ', styleBase)
	if rows < 1 || width < 1 || f.ViewHeight <= 0 {
		r.screen.Show()
		return
	}

	v := View{Cols: width, Rows: rows, Bottom: f.CameraBottom, Height: f.ViewHeight}
	v.Left = r.camera.Follow(f.Plane.Pos.X, width, v.ColScale()) + r.shake(f.Tick)/v.ColScale()
	r.view = v

	r.drawTerrain(v, f.Terrain)
	r.drawStreaks(v)
	r.drawEntities(v, f.Entities)
	r.drawPlane(v, f.Plane)
	r.drawHUD(width, height-1, f)
	if f.Result != nil {
		r.drawGameOver(width, rows, f)
	}

	r.screen.Show()
	r.rumble *= parameter.RumbleDecay
}

// absorb applies the cosmetic reactions to this frame's events
func (r *TerminalRenderer) absorb(events []event.GameEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventImpact:
			if p, ok := ev.Payload.(*event.ImpactPayload); ok {
				r.rumble = math.Min(r.rumble+p.Magnitude*parameter.RumblePerMagnitude, parameter.RumbleMax)
			}
		case event.EventWindParticle:
			if p, ok := ev.Payload.(*event.WindPayload); ok && len(r.streaks) < parameter.WindStreakMax {
				r.streaks = append(r.streaks, streak{
					pos: vmath.Vec2{X: p.X, Y: p.Y},
					vel: vmath.Vec2{X: p.VX, Y: p.VY},
				})
			}
		}
	}
}

func (r *TerminalRenderer) advanceStreaks(dt float64) {
	life := parameter.WindStreakLifetime.Seconds()
	kept := r.streaks[:0]
	for _, s := range r.streaks {
		s.age += dt
		if s.age >= life {
			continue
		}
		s.pos = vmath.V2Add(s.pos, vmath.V2Scale(s.vel, dt))
		kept = append(kept, s)
	}
	r.streaks = kept
}

// shake alternates sides every tick, in cells
func (r *TerminalRenderer) shake(tick int64) float64 {
	s := math.Round(r.rumble)
	if tick%2 == 1 {
		s = -s
	}
	return s
}

func (r *TerminalRenderer) drawTerrain(v View, pts []terrain.Point) {
	for row := 0; row < v.Rows; row++ {
		left, right, ok := WallsAt(pts, v.RowY(row))
		if !ok {
			continue
		}
		lc, rc := v.Col(left), v.Col(right)
		for col := 0; col < v.Cols; col++ {
			switch {
			case col < lc || col > rc:
				r.screen.SetContent(col, row, parameter.RockChar, nil, styleRock)
			case col == lc || col == rc:
				r.screen.SetContent(col, row, parameter.WallEdgeChar, nil, styleEdge)
			}
		}
	}
}

func (r *TerminalRenderer) drawStreaks(v View) {
	for _, s := range r.streaks {
		col, row := v.Col(s.pos.X), v.Row(s.pos.Y)
		if v.Contains(col, row) {
			r.screen.SetContent(col, row, parameter.WindChar, nil, styleWind)
		}
	}
}

func (r *TerminalRenderer) drawEntities(v View, entities []engine.EntityView) {
	for _, e := range entities {
		col, row := v.Col(e.Pos.X), v.Row(e.Pos.Y)
		if !v.Contains(col, row) {
			continue
		}
		ch, style := entityGlyph(e)
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

func entityGlyph(e engine.EntityView) (rune, tcell.Style) {
	switch e.Kind {
	case hazard.KindGatling:
		return parameter.GatlingChar, styleBase.Foreground(RgbTurret)
	case hazard.KindRocketSite:
		return parameter.RocketSiteChar, styleBase.Foreground(RgbTurret)
	case hazard.KindBullet:
		return parameter.BulletChar, styleBase.Foreground(RgbBullet)
	case hazard.KindRocket:
		return Arrow(e.Angle), styleBase.Foreground(RgbRocket).Bold(true)
	case hazard.KindPickup:
		return parameter.PickupChar, styleBase.Foreground(RgbPickup).Bold(true)
	default:
		return '?', styleBase
	}
}

func (r *TerminalRenderer) drawPlane(v View, p physics.Plane) {
	col, row := v.Col(p.Pos.X), v.Row(p.Pos.Y)
	if v.Contains(col, row) {
		r.screen.SetContent(col, row, Arrow(p.Angle), nil, stylePlane)
	}
}

func (r *TerminalRenderer) drawHUD(width, row int, f *engine.Frame) {
	filled := int(math.Round(vmath.Clamp(f.Gas, 0, 1) * parameter.GasGaugeWidth))
	gauge := strings.Repeat("#", filled) + strings.Repeat("-", parameter.GasGaugeWidth-filled)

	x := r.drawText(0, row, width, fmt.Sprintf(" ALT %6.2f  BEST %6.2f  GAS [", f.MaxAltitude, f.Best), styleHUD)
	gasStyle := styleBase.Foreground(RgbGasFull)
	if f.Gas < 0.25 {
		gasStyle = styleBase.Foreground(RgbGasLow)
	}
	x = r.drawText(x, row, width, gauge, gasStyle)
	r.drawText(x, row, width, fmt.Sprintf("]  THR %3.0f%%  SPD %4.2f", f.Throttle*100, f.Plane.ForwardSpeed()), styleHUD)
}

func (r *TerminalRenderer) drawGameOver(width, rows int, f *engine.Frame) {
	title := "CRASHED"
	switch f.Result.Reason {
	case engine.ReasonOutOfBounds:
		title = "OUT OF BOUNDS"
	case engine.ReasonQuit:
		title = "QUIT"
	}
	score := fmt.Sprintf("altitude %.2f", f.Result.Altitude)
	if f.Result.Altitude > f.Best {
		score += "  new best!"
	}

	lines := []string{title, score, parameter.OverlayHint}
	top := rows/2 - len(lines)/2
	for i, line := range lines {
		x := max((width-len([]rune(line)))/2, 0)
		r.drawText(x, top+i, width, line, styleOverlay)
	}
}

// drawText writes s from column x, clipped at width; returns the column after the text
func (r *TerminalRenderer) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
