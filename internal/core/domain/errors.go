package domain

import "errors"

// Validation failures. Every rejection wraps exactly one of these.
var (
	ErrMissingRequest     = errors.New("request is missing")
	ErrMissingPosition    = errors.New("position is missing")
	ErrMissingCoordinate  = errors.New("lng or lat is missing")
	ErrMissingRegion      = errors.New("region is missing")
	ErrInvalidVertexCount = errors.New("invalid vertex count")
	ErrUnclosedPolygon    = errors.New("polygon not closed")
	ErrInvalidAngle       = errors.New("invalid angle")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrMissingRequest, "missing_request"},
	{ErrMissingPosition, "missing_position"},
	{ErrMissingCoordinate, "missing_coordinate"},
	{ErrMissingRegion, "missing_region"},
	{ErrInvalidVertexCount, "invalid_vertex_count"},
	{ErrUnclosedPolygon, "unclosed_polygon"},
	{ErrInvalidAngle, "invalid_angle"},
}

// ErrorCode returns a stable label for err, suitable for metrics and logs.
// Errors outside the taxonomy (e.g. malformed JSON) map to "malformed_request".
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return "malformed_request"
}
