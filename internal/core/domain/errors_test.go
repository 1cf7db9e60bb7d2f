package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("position1: %w", ErrMissingCoordinate), "missing_coordinate"},
		{fmt.Errorf("vertex 3: %w", ErrMissingPosition), "missing_position"},
		{ErrUnclosedPolygon, "unclosed_polygon"},
		{fmt.Errorf("%w: out of range", ErrInvalidAngle), "invalid_angle"},
		{errors.New("unexpected end of JSON input"), "malformed_request"},
	}
	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestPositionEqual(t *testing.T) {
	if !(Position{Lng: 1, Lat: 2}).Equal(Position{Lng: 1, Lat: 2}) {
		t.Error("expected equal positions")
	}
	if (Position{Lng: 1, Lat: 2}).Equal(Position{Lng: 1, Lat: 2.0000000001}) {
		t.Error("expected exact comparison")
	}
}

func TestRegionInput_Region(t *testing.T) {
	name := "triangle"
	in := &RegionInput{
		Name:     &name,
		Vertices: []*PositionInput{NewPositionInput(0, 0), NewPositionInput(1, 0), NewPositionInput(0, 1), NewPositionInput(0, 0)},
	}
	r := in.Region()
	if r.Name != "triangle" || len(r.Vertices) != 4 || r.Vertices[1] != (Position{Lng: 1, Lat: 0}) {
		t.Errorf("unexpected region: %+v", r)
	}
}
