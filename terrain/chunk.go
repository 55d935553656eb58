package terrain

import (
	"math"

	"github.com/lixenwraith/gasup/vmath"
)

// Edge is one wall sample with its decorative rock and hazard markers
type Edge struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Size and Rot (radians) describe the rock drawn on the wall
	Size    float64 `json:"size"`
	Rot     float64 `json:"rot"`
	Rocket  bool    `json:"rocket,omitempty"`
	Gatling bool    `json:"gatling,omitempty"`
}

// Pos returns the edge position as a vector
func (e Edge) Pos() vmath.Vec2 {
	return vmath.Vec2{X: e.X, Y: e.Y}
}

// Point is a left/right wall pair at one height
type Point struct {
	Left  Edge `json:"left"`
	Right Edge `json:"right"`
	Gas   bool `json:"gas,omitempty"`
	Vine  bool `json:"vine,omitempty"`
}

func (p Point) Y() float64 { return p.Left.Y }

// Center is the horizontal midpoint between the walls
func (p Point) Center() float64 { return (p.Left.X + p.Right.X) / 2 }

// Chunk is a fixed-size run of boundary points
// End is the boundary at the next chunk's first height, position only
type Chunk struct {
	Index  int     `json:"index"`
	Points []Point `json:"points"`
	End    Point   `json:"end"`
}

// Terrain is the lazily generated canyon: centreline path, flat point stream and chunk cache
// Not safe for concurrent use; the engine owns it from a single goroutine
type Terrain struct {
	cfg    Config
	path   *Path
	detail vmath.Source
	points *Sequence[Point]
	chunks *Sequence[*Chunk]

	segIndex    int
	left, right vmath.Spline
}

// NewTerrain builds a canyon drawing the centreline from pathRNG and edge details and markers from detailRNG
func NewTerrain(cfg Config, pathRNG, detailRNG vmath.Source) *Terrain {
	t := &Terrain{
		cfg:      cfg,
		path:     NewPath(cfg, pathRNG),
		detail:   detailRNG,
		segIndex: -1,
	}

	k := 0
	t.points = NewSequence[Point](GeneratorFunc[Point](func() Point {
		p := t.point(k)
		k++
		return p
	}))

	c := 0
	t.chunks = NewSequence[*Chunk](GeneratorFunc[*Chunk](func() *Chunk {
		ch := t.buildChunk(c)
		c++
		return ch
	}))
	return t
}

func (t *Terrain) Config() Config { return t.cfg }

// Chunk returns chunk i, generating every chunk up to it on first access
func (t *Terrain) Chunk(i int) *Chunk {
	return t.chunks.At(i)
}

// PointAt returns flat stream point k
func (t *Terrain) PointAt(k int) Point {
	return t.points.At(k)
}

func (t *Terrain) buildChunk(i int) *Chunk {
	n := t.cfg.PointsPerChunk
	pts := make([]Point, n)
	for j := range pts {
		pts[j] = t.points.At(i*n + j)
	}
	next := (i + 1) * n
	left, right, y := t.boundary(next, true)
	return &Chunk{
		Index:  i,
		Points: pts,
		End: Point{
			Left:  Edge{X: left, Y: y},
			Right: Edge{X: right, Y: y},
		},
	}
}

// point builds stream point k and rolls its details
// Draw order is fixed so a seed reproduces the same canyon
func (t *Terrain) point(k int) Point {
	left, right, y := t.boundary(k, false)
	src := t.detail
	cfg := t.cfg

	p := Point{
		Left:  t.edge(left, y, 180),
		Right: t.edge(right, y, 0),
	}
	p.Left.Rocket = vmath.Chance(src, cfg.RocketChance)
	p.Left.Gatling = vmath.Chance(src, cfg.GatlingChance)
	p.Right.Rocket = vmath.Chance(src, cfg.RocketChance)
	p.Right.Gatling = vmath.Chance(src, cfg.GatlingChance)
	p.Gas = vmath.Chance(src, cfg.GasChance)
	p.Vine = vmath.Chance(src, cfg.VineChance)

	if k/cfg.PointsPerChunk < cfg.HazardSafeChunks {
		p.Left.Rocket, p.Left.Gatling = false, false
		p.Right.Rocket, p.Right.Gatling = false, false
		p.Gas, p.Vine = false, false
	}
	return p
}

func (t *Terrain) edge(x, y, baseDeg float64) Edge {
	spread := t.cfg.EdgeRotSpread
	rot := vmath.Fuzz(t.detail, baseDeg+spread, spread)
	size := vmath.Gauss(t.detail, t.cfg.EdgeSize, t.cfg.EdgeSizeSigma)
	return Edge{
		X:    x,
		Y:    y,
		Size: math.Max(size, 0),
		Rot:  rot * math.Pi / 180,
	}
}

// boundary evaluates the walls at stream index k
// closing evaluates a segment start as the end of the previous segment
func (t *Terrain) boundary(k int, closing bool) (left, right, y float64) {
	n := t.cfg.PointsPerSegment
	seg, j := k/n, k%n
	d := float64(j) / float64(n)
	if closing && j == 0 && seg > 0 {
		seg, d = seg-1, 1
	}

	ls, rs := t.segment(seg)
	start := t.path.control(seg)
	stop := t.path.control(seg + 1)
	y = vmath.Lerp(start.Y, stop.Y, d)
	left, right = ls.At(d), rs.At(d)

	if gap := right - left; gap < t.cfg.MinGap {
		mid := (left + right) / 2
		left, right = mid-t.cfg.MinGap/2, mid+t.cfg.MinGap/2
	}
	return left, right, y
}

// segment returns the wall splines joining path samples s and s+1
func (t *Terrain) segment(s int) (left, right vmath.Spline) {
	if s == t.segIndex {
		return t.left, t.right
	}

	var lp, rp [4]vmath.Vec2
	for i := range lp {
		smp := t.path.control(s - 1 + i)
		half := smp.Width / 2
		lp[i] = vmath.Vec2{X: smp.X - half, Y: smp.Y}
		rp[i] = vmath.Vec2{X: smp.X + half, Y: smp.Y}
	}

	t.left = vmath.NewSpline(lp[0], lp[1], lp[2], lp[3])
	t.right = vmath.NewSpline(rp[0], rp[1], rp[2], rp[3])
	t.segIndex = s
	return t.left, t.right
}
