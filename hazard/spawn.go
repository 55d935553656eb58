package hazard

import (
	"math"

	"github.com/lixenwraith/gasup/terrain"
	"github.com/lixenwraith/gasup/vmath"
)

// FromPoint builds the entities marked on a terrain point
// Left-wall emplacements face right, right-wall ones face left; pickups sit mid-canyon
func FromPoint(p terrain.Point, prm *Params) []Entity {
	var out []Entity
	add := func(e terrain.Edge, facing float64) {
		if e.Rocket {
			out = append(out, NewRocketSite(e.Pos(), facing, prm))
		}
		if e.Gatling {
			out = append(out, NewGatling(e.Pos(), facing, prm))
		}
	}
	add(p.Left, 0)
	add(p.Right, math.Pi)

	if p.Gas {
		out = append(out, NewPickup(vmath.Vec2{X: p.Center(), Y: p.Y()}, prm))
	}
	return out
}

// FromChunk builds every entity marked in a chunk, bottom to top
func FromChunk(c *terrain.Chunk, prm *Params) []Entity {
	var out []Entity
	for _, p := range c.Points {
		out = append(out, FromPoint(p, prm)...)
	}
	return out
}
