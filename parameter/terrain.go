package parameter

// Canyon Path
const (
	// TerrainPathStep is the vertical distance between centreline samples (world units)
	TerrainPathStep = 0.5

	// TerrainPathSigma scales the random walk of the centreline x
	TerrainPathSigma = 0.15

	// TerrainWidthBase is the mean canyon width
	TerrainWidthBase = 0.8

	// TerrainWidthJitter is the uniform half-range around TerrainWidthBase
	TerrainWidthJitter = 0.2

	// TerrainMinWidth is the floor applied to every sampled width
	TerrainMinWidth = 0.2

	// TerrainMinGap is the floor applied to the interpolated wall gap
	TerrainMinGap = 0.15

	// TerrainAnchorWidth is the width of the synthetic sample below the origin
	TerrainAnchorWidth = 0.5
)

// Chunking
const (
	// TerrainPointsPerSegment is the number of boundary points between two path samples
	TerrainPointsPerSegment = 10

	// TerrainPointsPerChunk is the number of boundary points per chunk
	TerrainPointsPerChunk = 20
)

// Edge Decoration
const (
	// TerrainEdgeSize is the mean rock size drawn on each wall point
	TerrainEdgeSize = 0.07

	// TerrainEdgeSizeSigma scales rock size variation
	TerrainEdgeSizeSigma = 0.02

	// TerrainEdgeRotSpread is the rotation jitter in degrees around each wall's base
	TerrainEdgeRotSpread = 45.0
)

// Markers
const (
	// TerrainHazardSafeChunks is the number of chunks from the origin without markers
	TerrainHazardSafeChunks = 5

	// TerrainRocketChance is the per-edge probability of an anti-air emplacement
	TerrainRocketChance = 0.004

	// TerrainGatlingChance is the per-edge probability of a gatling turret
	TerrainGatlingChance = 0.006

	// TerrainGasChance is the per-point probability of a gas pickup
	TerrainGasChance = 0.006

	// TerrainVineChance is the per-point probability of a decorative vine
	TerrainVineChance = 0.04
)
