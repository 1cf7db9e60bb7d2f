// Package geospatial implements flat-plane geometry over degree coordinates.
// Distances are Euclidean in degree space, which is only meaningful at the
// short ranges a drone covers between two navigation steps.
package geospatial

import (
	"math"

	"github.com/samirrijal/dronegeo/internal/core/domain"
)

// EdgeTolerance bounds the cross product and bounding box checks used to
// classify a point as lying on a polygon edge.
const EdgeTolerance = 1e-12

// Distance returns the Euclidean distance between a and b in degrees.
func Distance(a, b domain.Position) float64 {
	dLng := a.Lng - b.Lng
	dLat := a.Lat - b.Lat
	return math.Sqrt(dLng*dLng + dLat*dLat)
}

// Step moves from start by stepSize degrees towards angleDeg.
// 0 is East, 90 North, 180 West and 270 South.
func Step(start domain.Position, angleDeg, stepSize float64) domain.Position {
	rad := toRad(angleDeg)
	return domain.Position{
		Lng: start.Lng + stepSize*math.Cos(rad),
		Lat: start.Lat + stepSize*math.Sin(rad),
	}
}

// PointInPolygon reports whether p lies inside the closed polygon described by
// vertices, using the even-odd rule. Vertices and points on an edge count as
// inside.
func PointInPolygon(p domain.Position, vertices []domain.Position) bool {
	for _, v := range vertices {
		if v.Equal(p) {
			return true
		}
	}

	x, y := p.Lng, p.Lat
	crossings := 0
	n := len(vertices)
	for cur, prev := 0, n-1; cur < n; prev, cur = cur, cur+1 {
		cx, cy := vertices[cur].Lng, vertices[cur].Lat
		px, py := vertices[prev].Lng, vertices[prev].Lat

		if onSegment(x, y, cx, cy, px, py) {
			return true
		}

		// Horizontal edges never straddle, so py-cy is non-zero below.
		if (y < cy) != (y < py) {
			xCross := cx + (y-cy)/(py-cy)*(px-cx)
			if x < xCross {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

func onSegment(x, y, cx, cy, px, py float64) bool {
	cross := (y-cy)*(px-cx) - (py-cy)*(x-cx)
	if math.Abs(cross) >= EdgeTolerance {
		return false
	}
	return x >= math.Min(cx, px)-EdgeTolerance && x <= math.Max(cx, px)+EdgeTolerance &&
		y >= math.Min(cy, py)-EdgeTolerance && y <= math.Max(cy, py)+EdgeTolerance
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
