package shapefile

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

// TestValidateCoordinate tests geographic bounds checking
func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"valid southern california", 34.06, -117.65, false},
		{"valid equator", 0, 0, false},
		{"valid extremes", 90, 180, false},
		{"valid negative extremes", -90, -180, false},
		{"latitude too high", 90.1, 0, true},
		{"latitude too low", -90.1, 0, true},
		{"longitude too high", 0, 180.1, true},
		{"longitude too low", 0, -180.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lat, tt.lon)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected wantErr=%v, got err=%v", tt.wantErr, err)
			}
		})
	}
}

// TestValidateGeometry tests per-vertex validation across geometry types
func TestValidateGeometry(t *testing.T) {
	tests := []struct {
		name    string
		geom    orb.Geometry
		wantErr bool
	}{
		{"valid point", orb.Point{-117.65, 34.06}, false},
		{"invalid point", orb.Point{-200, 34.06}, true},
		{"valid line", orb.LineString{{-117, 34}, {-118, 34}}, false},
		{"line with bad vertex", orb.LineString{{-117, 34}, {-117, 95}}, true},
		{"valid polygon", orb.Polygon{{{-117, 34}, {-117, 35}, {-116, 35}, {-117, 34}}}, false},
		{"polygon with bad vertex", orb.Polygon{{{-117, 34}, {-117, 95}, {-116, 35}, {-117, 34}}}, true},
		{"empty multipolygon", orb.MultiPolygon{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeometry(tt.geom)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected wantErr=%v, got err=%v", tt.wantErr, err)
			}
		})
	}
}

// TestValidateGeometryNil tests the typed error for nil geometry
func TestValidateGeometryNil(t *testing.T) {
	err := ValidateGeometry(nil)
	if err == nil {
		t.Fatal("Expected error for nil geometry, got nil")
	}

	var invalid *ErrInvalidGeometry
	if !errors.As(err, &invalid) {
		t.Errorf("Expected ErrInvalidGeometry, got %T", err)
	}
}
