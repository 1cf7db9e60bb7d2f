package geospatial

import (
	"math"
	"testing"

	"github.com/samirrijal/dronegeo/internal/core/domain"
)

const step = 0.00015

func pos(lng, lat float64) domain.Position {
	return domain.Position{Lng: lng, Lat: lat}
}

var square = []domain.Position{pos(0, 0), pos(0, 10), pos(10, 10), pos(10, 0), pos(0, 0)}

func TestDistance(t *testing.T) {
	a := pos(-3.192473, 55.946233)
	b := pos(-3.184319, 55.942617)

	if d := Distance(a, a); d != 0 {
		t.Errorf("expected zero self-distance, got %v", d)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("distance is not symmetric: %v vs %v", Distance(a, b), Distance(b, a))
	}
	if d := Distance(pos(0, 0), pos(3, 4)); d != 5 {
		t.Errorf("expected 5, got %v", d)
	}
	if d := Distance(pos(0, 0), pos(0.0001, 0)); d != 0.0001 {
		t.Errorf("expected 0.0001, got %v", d)
	}
}

func TestStep_CompassAxes(t *testing.T) {
	tests := []struct {
		angle    float64
		wantLng  float64
		wantLatt float64
	}{
		{0, step, 0},
		{90, 0, step},
		{180, -step, 0},
		{270, 0, -step},
	}
	for _, tt := range tests {
		got := Step(pos(0, 0), tt.angle, step)
		if math.Abs(got.Lng-tt.wantLng) > 1e-15 || math.Abs(got.Lat-tt.wantLatt) > 1e-15 {
			t.Errorf("Step(%v) = %+v, want (%v, %v)", tt.angle, got, tt.wantLng, tt.wantLatt)
		}
	}
}

func TestStep_FullRotationReturnsToStart(t *testing.T) {
	start := pos(-3.186874, 55.944494)
	p := start
	for i := 0; i < 16; i++ {
		p = Step(p, float64(i)*22.5, step)
	}
	if d := Distance(p, start); d > 1e-12 {
		t.Errorf("expected to return to start, off by %v", d)
	}
}

func TestStep_LengthIsStepSize(t *testing.T) {
	for angle := 0.0; angle < 360; angle += 22.5 {
		d := Distance(pos(1, 1), Step(pos(1, 1), angle, step))
		if math.Abs(d-step) > 1e-15 {
			t.Errorf("angle %v: step length %v, want %v", angle, d, step)
		}
	}
}

func TestPointInPolygon_Square(t *testing.T) {
	tests := []struct {
		name string
		p    domain.Position
		want bool
	}{
		{"centre", pos(5, 5), true},
		{"outside", pos(15, 15), false},
		{"vertex", pos(0, 0), true},
		{"far vertex", pos(10, 10), true},
		{"bottom edge", pos(5, 0), true},
		{"left edge", pos(0, 5), true},
		{"right edge", pos(10, 5), true},
		{"top edge", pos(5, 10), true},
		{"left of square on edge line", pos(-5, 0), false},
		{"right of square at vertex latitude", pos(15, 10), false},
		{"below", pos(5, -0.0001), false},
		{"just inside", pos(9.9999, 9.9999), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.p, square); got != tt.want {
				t.Errorf("PointInPolygon(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointInPolygon_Concave(t *testing.T) {
	// U shape open to the north
	u := []domain.Position{
		pos(0, 0), pos(6, 0), pos(6, 6), pos(4, 6), pos(4, 2),
		pos(2, 2), pos(2, 6), pos(0, 6), pos(0, 0),
	}
	if !PointInPolygon(pos(1, 4), u) {
		t.Error("expected left arm to be inside")
	}
	if !PointInPolygon(pos(5, 4), u) {
		t.Error("expected right arm to be inside")
	}
	if PointInPolygon(pos(3, 4), u) {
		t.Error("expected notch to be outside")
	}
	// Ray from the notch passes through vertex latitude 2 and 6
	if PointInPolygon(pos(3, 6), u) {
		t.Error("expected notch mouth to be outside")
	}
	if !PointInPolygon(pos(3, 2), u) {
		t.Error("expected notch floor edge to be inside")
	}
}

func TestPointInPolygon_Triangle(t *testing.T) {
	tri := []domain.Position{pos(0, 0), pos(4, 0), pos(2, 4), pos(0, 0)}
	if !PointInPolygon(pos(2, 1), tri) {
		t.Error("expected interior point to be inside")
	}
	if !PointInPolygon(pos(1, 2), tri) {
		t.Error("expected point on slanted edge to be inside")
	}
	if PointInPolygon(pos(3.5, 3), tri) {
		t.Error("expected point beside slanted edge to be outside")
	}
}

func TestPointInPolygon_DegenerateEdges(t *testing.T) {
	// Duplicate consecutive vertices produce zero-length edges
	dup := []domain.Position{pos(0, 0), pos(0, 0), pos(0, 10), pos(10, 10), pos(10, 10), pos(10, 0), pos(0, 0)}
	if !PointInPolygon(pos(5, 5), dup) {
		t.Error("expected centre to be inside")
	}
	if PointInPolygon(pos(-1, 0), dup) {
		t.Error("expected point left of degenerate edge to be outside")
	}
}

func TestPointInPolygon_Idempotent(t *testing.T) {
	p := pos(3.3, 7.1)
	first := PointInPolygon(p, square)
	for i := 0; i < 10; i++ {
		if PointInPolygon(p, square) != first {
			t.Fatal("result changed between identical calls")
		}
	}
}
