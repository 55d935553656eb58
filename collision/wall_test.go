package collision

import (
	"testing"

	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/terrain"
	"github.com/lixenwraith/gasup/vmath"
)

func seeded(seed int64) *terrain.Terrain {
	return terrain.NewTerrain(terrain.DefaultConfig(),
		vmath.NewFastRand(vmath.SplitSeed(seed, 0)),
		vmath.NewFastRand(vmath.SplitSeed(seed, 1)))
}

func TestCheckWallInsideAndOutside(t *testing.T) {
	tr := seeded(21)
	step := tr.Config().PointStep()

	for _, k := range []int{3, 27, 55, 140} {
		y := (float64(k) + 0.4) * step
		lo, hi := tr.PointAt(k), tr.PointAt(k+1)
		left, right := Bounds(lo, hi, y)

		tests := []struct {
			name  string
			x     float64
			crash bool
		}{
			{"Centre", (left + right) / 2, false},
			{"Just inside left", left + 1e-6, false},
			{"Just inside right", right - 1e-6, false},
			{"Left of wall", left - 0.01, true},
			{"Right of wall", right + 0.01, true},
		}
		for _, tt := range tests {
			res := CheckWall(tr, vmath.Vec2{X: tt.x, Y: y}, parameter.CollisionWindow)
			if !res.Bracketed {
				t.Fatalf("Point %d %s: expected bracket", k, tt.name)
			}
			if res.Crashed != tt.crash {
				t.Errorf("Point %d %s: expected crash=%v, got %v", k, tt.name, tt.crash, res.Crashed)
			}
		}
	}
}

func TestCheckWallOnPoint(t *testing.T) {
	tr := seeded(4)
	p := tr.PointAt(30)
	res := CheckWall(tr, vmath.Vec2{X: p.Center(), Y: p.Y()}, parameter.CollisionWindow)
	if res.Crashed {
		t.Error("Expected no crash at the canyon centre")
	}
	if !res.Bracketed {
		t.Error("Expected bracket on an exact point height")
	}
}

func TestCheckWallBelowOrigin(t *testing.T) {
	tr := seeded(4)
	res := CheckWall(tr, vmath.Vec2{X: 50, Y: -1}, parameter.CollisionWindow)
	if res.Crashed || res.Bracketed {
		t.Errorf("Expected no bracket below the origin, got %+v", res)
	}
}

func TestBoundsInterpolates(t *testing.T) {
	lo := terrain.Point{
		Left:  terrain.Edge{X: -1, Y: 0},
		Right: terrain.Edge{X: 1, Y: 0},
	}
	hi := terrain.Point{
		Left:  terrain.Edge{X: 0, Y: 1},
		Right: terrain.Edge{X: 2, Y: 1},
	}
	left, right := Bounds(lo, hi, 0.25)
	if left != -0.75 || right != 1.25 {
		t.Errorf("Expected (-0.75, 1.25), got (%v, %v)", left, right)
	}
	if l, r := Bounds(lo, lo, 0); l != -1 || r != 1 {
		t.Errorf("Expected degenerate span to return lower point, got (%v, %v)", l, r)
	}
}
