package terrain

import "github.com/lixenwraith/gasup/parameter"

// Config holds the canyon generation parameters
type Config struct {
	PathStep    float64 `yaml:"path_step"`
	PathSigma   float64 `yaml:"path_sigma"`
	WidthBase   float64 `yaml:"width_base"`
	WidthJitter float64 `yaml:"width_jitter"`
	MinWidth    float64 `yaml:"min_width"`
	MinGap      float64 `yaml:"min_gap"`
	AnchorWidth float64 `yaml:"anchor_width"`

	PointsPerSegment int `yaml:"points_per_segment"`
	PointsPerChunk   int `yaml:"points_per_chunk"`

	EdgeSize      float64 `yaml:"edge_size"`
	EdgeSizeSigma float64 `yaml:"edge_size_sigma"`
	EdgeRotSpread float64 `yaml:"edge_rot_spread"`

	HazardSafeChunks int     `yaml:"hazard_safe_chunks"`
	RocketChance     float64 `yaml:"rocket_chance"`
	GatlingChance    float64 `yaml:"gatling_chance"`
	GasChance        float64 `yaml:"gas_chance"`
	VineChance       float64 `yaml:"vine_chance"`
}

func DefaultConfig() Config {
	return Config{
		PathStep:         parameter.TerrainPathStep,
		PathSigma:        parameter.TerrainPathSigma,
		WidthBase:        parameter.TerrainWidthBase,
		WidthJitter:      parameter.TerrainWidthJitter,
		MinWidth:         parameter.TerrainMinWidth,
		MinGap:           parameter.TerrainMinGap,
		AnchorWidth:      parameter.TerrainAnchorWidth,
		PointsPerSegment: parameter.TerrainPointsPerSegment,
		PointsPerChunk:   parameter.TerrainPointsPerChunk,
		EdgeSize:         parameter.TerrainEdgeSize,
		EdgeSizeSigma:    parameter.TerrainEdgeSizeSigma,
		EdgeRotSpread:    parameter.TerrainEdgeRotSpread,
		HazardSafeChunks: parameter.TerrainHazardSafeChunks,
		RocketChance:     parameter.TerrainRocketChance,
		GatlingChance:    parameter.TerrainGatlingChance,
		GasChance:        parameter.TerrainGasChance,
		VineChance:       parameter.TerrainVineChance,
	}
}

// PointStep is the vertical distance between consecutive boundary points
func (c Config) PointStep() float64 {
	return c.PathStep / float64(c.PointsPerSegment)
}
