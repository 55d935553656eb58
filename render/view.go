package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/gasup/collision"
	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/terrain"
)

// View maps world coordinates onto the cell grid of the play area
// Row 0 is the top; world y grows upward
type View struct {
	Cols, Rows int
	Bottom     float64 // world y at the bottom edge
	Height     float64 // world units spanned by Rows
	Left       float64 // world x at the left edge
}

// RowScale is cells per world unit vertically
func (v View) RowScale() float64 {
	return float64(v.Rows) / v.Height
}

// ColScale is cells per world unit horizontally, corrected for cell aspect
func (v View) ColScale() float64 {
	return v.RowScale() * parameter.CameraCellAspect
}

func (v View) Row(y float64) int {
	return int(math.Floor((v.Bottom + v.Height - y) * v.RowScale()))
}

func (v View) Col(x float64) int {
	return int(math.Floor((x - v.Left) * v.ColScale()))
}

// RowY is the world height at the centre of row r
func (v View) RowY(r int) float64 {
	return v.Bottom + v.Height - (float64(r)+0.5)/v.RowScale()
}

// ColX is the world x at the centre of column c
func (v View) ColX(c int) float64 {
	return v.Left + (float64(c)+0.5)/v.ColScale()
}

func (v View) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// WallsAt interpolates the canyon walls at height y from points sorted bottom to top
// ok is false when y is outside the covered span
func WallsAt(pts []terrain.Point, y float64) (left, right float64, ok bool) {
	hi := sort.Search(len(pts), func(i int) bool { return pts[i].Y() > y })
	if hi == 0 || hi == len(pts) {
		return 0, 0, false
	}
	left, right = collision.Bounds(pts[hi-1], pts[hi], y)
	return left, right, true
}

// Camera pans horizontally with a dead zone around the centre
type Camera struct {
	left  float64
	ready bool
}

// Follow returns the world x of the left edge keeping x outside the edge margins
func (c *Camera) Follow(x float64, cols int, colScale float64) float64 {
	width := float64(cols) / colScale
	if !c.ready {
		c.left = x - width/2
		c.ready = true
		return c.left
	}

	margin := math.Min(parameter.CameraDeadZoneMarginX, float64(cols)/4) / colScale
	switch {
	case x < c.left+margin:
		c.left = x - margin
	case x > c.left+width-margin:
		c.left = x - width + margin
	}
	return c.left
}

// Reset recentres on the next Follow
func (c *Camera) Reset() {
	c.ready = false
}

var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Arrow returns the eight-way arrow closest to angle
func Arrow(angle float64) rune {
	i := int(math.Round(angle / (math.Pi / 4)))
	return arrows[((i%8)+8)%8]
}
