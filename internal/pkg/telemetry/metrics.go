package telemetry

// Tracer and span attribute names used for instrumentation.
const (
	TracerName = "github.com/samirrijal/dronegeo"

	// HTTP
	AttrHTTPMethod = "http.method"
	AttrHTTPRoute  = "http.route"
	AttrHTTPStatus = "http.status_code"
	AttrRequestID  = "request.id"

	// Geometry
	AttrOperation      = "geometry.operation"
	AttrRegionName     = "geometry.region.name"
	AttrRegionVertices = "geometry.region.vertices"
	AttrRegionInside   = "geometry.region.inside"
	AttrCacheHit       = "geometry.cache_hit"
	AttrRejection      = "geometry.rejection"
)
