package terrain

import (
	"math"

	"github.com/lixenwraith/gasup/vmath"
)

// Sample is one centreline point of the canyon
type Sample struct {
	X     float64
	Y     float64
	Width float64
}

// Path is the lazily generated canyon centreline
// Each x is a random-walk step from the previous one; y advances by PathStep
type Path struct {
	cfg Config
	seq *Sequence[Sample]
}

func NewPath(cfg Config, rng vmath.Source) *Path {
	n := 0
	last := 0.0
	gen := GeneratorFunc[Sample](func() Sample {
		last = vmath.Gauss(rng, last, cfg.PathSigma)
		width := math.Max(vmath.Fuzz(rng, cfg.WidthBase, cfg.WidthJitter), cfg.MinWidth)
		s := Sample{X: last, Y: float64(n) * cfg.PathStep, Width: width}
		n++
		return s
	})
	return &Path{cfg: cfg, seq: NewSequence[Sample](gen)}
}

// At returns sample i, generating up to it if needed
func (p *Path) At(i int) Sample {
	return p.seq.At(i)
}

// Len returns the number of generated samples
func (p *Path) Len() int {
	return p.seq.Len()
}

// control returns sample i, or the synthetic anchor below the origin for i < 0
func (p *Path) control(i int) Sample {
	if i < 0 {
		return Sample{X: 0, Y: float64(i) * p.cfg.PathStep, Width: p.cfg.AnchorWidth}
	}
	return p.seq.At(i)
}
