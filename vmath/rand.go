package vmath

// Source yields uniform draws in [0, 1)
// Terrain and hazard code take a Source so tests can pin every draw
type Source interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns the top 53 bits as a fraction in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// SplitSeed derives an independent stream seed from a base seed and a stream id
// splitmix64 finaliser, keeps streams uncorrelated for adjacent ids
func SplitSeed(seed int64, stream uint64) uint64 {
	z := uint64(seed) + stream*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Fuzz returns a uniform draw in (n-bounds, n+bounds)
func Fuzz(src Source, n, bounds float64) float64 {
	return n + 2*bounds*(src.Float64()-0.5)
}

// Gauss returns a bell-shaped draw around mu scaled by sigma
// Irwin-Hall sum of 20 uniforms centred on zero, truncated to ±2
func Gauss(src Source, mu, sigma float64) float64 {
	sum := 0.0
	for i := 0; i < gaussTerms; i++ {
		sum += src.Float64()
	}
	return mu + sigma*Clamp(sum-gaussTerms/2, -2, 2)
}

const gaussTerms = 20

// Chance returns true with probability p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
