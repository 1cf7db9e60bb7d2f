package domain

// Position is a coordinate pair in degrees (WGS 84 axis order: lng, lat).
type Position struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Equal reports exact equality of both coordinates.
func (p Position) Equal(o Position) bool {
	return p.Lng == o.Lng && p.Lat == o.Lat
}

// Region is a named closed polygon. The last vertex repeats the first.
type Region struct {
	Name     string     `json:"name"`
	Vertices []Position `json:"vertices"`
}

// PositionInput is a position as received on the wire. Nil fields mean the
// coordinate was absent, which is distinct from zero.
type PositionInput struct {
	Lng *float64 `json:"lng"`
	Lat *float64 `json:"lat"`
}

// NewPositionInput builds a fully populated input.
func NewPositionInput(lng, lat float64) *PositionInput {
	return &PositionInput{Lng: &lng, Lat: &lat}
}

// Position converts a validated input. It panics on missing coordinates.
func (p *PositionInput) Position() Position {
	return Position{Lng: *p.Lng, Lat: *p.Lat}
}

// DistanceRequest carries the two positions compared by distance and proximity.
type DistanceRequest struct {
	Position1 *PositionInput `json:"position1"`
	Position2 *PositionInput `json:"position2"`
}

// NextPositionRequest asks for a single step from Start towards Angle degrees.
type NextPositionRequest struct {
	Start *PositionInput `json:"start"`
	Angle *float64       `json:"angle"`
}

// RegionInput is a region as received on the wire.
type RegionInput struct {
	Name     *string          `json:"name"`
	Vertices []*PositionInput `json:"vertices"`
}

// Region converts a validated input.
func (r *RegionInput) Region() Region {
	vertices := make([]Position, len(r.Vertices))
	for i, v := range r.Vertices {
		vertices[i] = v.Position()
	}
	return Region{Name: *r.Name, Vertices: vertices}
}

// RegionRequest asks whether Position lies inside Region.
type RegionRequest struct {
	Position *PositionInput `json:"position"`
	Region   *RegionInput   `json:"region"`
}
