package icon

const (
	DefaultResolveWorkers = 8

	stageStatic   = "static"
	stageCurated  = "curated"
	stageExplicit = "explicit"
	stageMetadata = "metadata"
	stageNone     = "none"
	stageFailed   = "failed"

	cacheHit  = "hit"
	cacheMiss = "miss"
)
