package terrain

import "math"

// indexEps absorbs float error when a bound lands exactly on a point height
const indexEps = 1e-9

// QueryRange returns the points whose height lies within [yStart, yEnd], bottom to top
// Bounds may be given in either order; ranges entirely below the origin yield nil
// Every touched chunk is materialised; the result is a copy
func QueryRange(t *Terrain, yStart, yEnd float64) []Point {
	lo, hi := yStart, yEnd
	if lo > hi {
		lo, hi = hi, lo
	}

	step := t.cfg.PointStep()
	first := int(math.Ceil(lo/step - indexEps))
	last := int(math.Floor(hi/step + indexEps))
	if last < 0 {
		return nil
	}
	if first < 0 {
		first = 0
	}
	if first > last {
		return nil
	}

	n := t.cfg.PointsPerChunk
	c0, o0 := first/n, first%n
	c1, o1 := last/n, last%n

	out := make([]Point, 0, last-first+1)
	if c0 == c1 {
		return append(out, t.Chunk(c0).Points[o0:o1+1]...)
	}

	out = append(out, t.Chunk(c0).Points[o0:]...)
	for c := c0 + 1; c < c1; c++ {
		out = append(out, t.Chunk(c).Points...)
	}
	return append(out, t.Chunk(c1).Points[:o1+1]...)
}
