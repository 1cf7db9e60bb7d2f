package natsadapter

import "testing"

func TestRegionSubject(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"George Square", "geometry.region.george_square"},
		{"bristo.square", "geometry.region.bristo_square"},
		{"no-fly-zone-7", "geometry.region.no-fly-zone-7"},
		{"a*b>c", "geometry.region.a_b_c"},
		{"", "geometry.region._"},
	}
	for _, tt := range tests {
		if got := RegionSubject(tt.name); got != tt.want {
			t.Errorf("RegionSubject(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
