package tigermap

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

// TestPlaceLabelHorizontal tests that an east-west road labels at 0 degrees
func TestPlaceLabelHorizontal(t *testing.T) {
	line := orb.LineString{{-118, 34}, {-117.5, 34}, {-117, 34}}

	anchor, angle, ok := PlaceLabel(line)
	if !ok {
		t.Fatal("Expected ok=true, got false")
	}
	if angle != 0 {
		t.Errorf("Expected angle=0, got %v", angle)
	}
	if anchor != line[1] {
		t.Errorf("Expected anchor at middle vertex, got %v", anchor)
	}
}

// TestPlaceLabelVertical tests that north-south roads label at +90 degrees
// regardless of digitizing direction
func TestPlaceLabelVertical(t *testing.T) {
	northbound := orb.LineString{{-117, 33}, {-117, 34}, {-117, 35}}
	southbound := orb.LineString{{-117, 35}, {-117, 34}, {-117, 33}}

	_, angle, ok := PlaceLabel(northbound)
	if !ok || angle != 90 {
		t.Errorf("Expected northbound angle=90, got %v (ok=%v)", angle, ok)
	}

	_, angle, ok = PlaceLabel(southbound)
	if !ok || angle != 90 {
		t.Errorf("Expected southbound angle=90, got %v (ok=%v)", angle, ok)
	}
}

// TestPlaceLabelAngleRange tests that every placement lands in (-90, +90]
func TestPlaceLabelAngleRange(t *testing.T) {
	tests := []struct {
		name string
		line orb.LineString
		want float64
	}{
		{"due north", orb.LineString{{0, 0}, {0, 1}}, 90},
		{"due south", orb.LineString{{0, 1}, {0, 0}}, 90},
		{"northeast", orb.LineString{{0, 0}, {1, 1}}, 45},
		{"southwest", orb.LineString{{1, 1}, {0, 0}}, 45},
		{"northwest", orb.LineString{{0, 0}, {-1, 1}}, -45},
		{"southeast", orb.LineString{{-1, 1}, {0, 0}}, -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, angle, ok := PlaceLabel(tt.line)
			if !ok {
				t.Fatal("Expected ok=true, got false")
			}
			if math.Abs(angle-tt.want) > 1e-9 {
				t.Errorf("Expected angle=%v, got %v", tt.want, angle)
			}
			if angle <= -90 || angle > 90 {
				t.Errorf("Expected angle in (-90, 90], got %v", angle)
			}
		})
	}
}

// TestPlaceLabelDegenerate tests short and zero-length inputs
func TestPlaceLabelDegenerate(t *testing.T) {
	if _, _, ok := PlaceLabel(orb.LineString{{0, 0}}); ok {
		t.Error("Expected ok=false for single vertex, got true")
	}
	if _, _, ok := PlaceLabel(orb.LineString{}); ok {
		t.Error("Expected ok=false for empty line, got true")
	}

	anchor, angle, ok := PlaceLabel(orb.LineString{{1, 1}, {1, 1}})
	if !ok {
		t.Fatal("Expected ok=true for coincident vertices, got false")
	}
	if angle != 0 {
		t.Errorf("Expected angle=0 for zero-length direction, got %v", angle)
	}
	if anchor != (orb.Point{1, 1}) {
		t.Errorf("Expected anchor [1, 1], got %v", anchor)
	}
}

// TestPlaceLabelArcLengthMidpoint tests that the anchor follows arc length,
// not vertex count: a long first segment pulls the midpoint toward it.
func TestPlaceLabelArcLengthMidpoint(t *testing.T) {
	line := orb.LineString{{0, 0}, {8, 0}, {9, 0}, {10, 0}, {11, 0}}

	anchor, _, ok := PlaceLabel(line)
	if !ok {
		t.Fatal("Expected ok=true, got false")
	}
	// Half of the 11-degree length is 5.5; vertex 1 at cumulative 8 is
	// nearest. The count-based middle vertex would be index 2.
	if anchor != (orb.Point{8, 0}) {
		t.Errorf("Expected anchor [8, 0], got %v", anchor)
	}
}

// TestPlaceLabelsMajorOnly tests that only named interstates and US routes
// are labeled
func TestPlaceLabelsMajorOnly(t *testing.T) {
	geom := orb.MultiLineString{{{0, 0}, {1, 0}}}
	highways := []Highway{
		{Name: "I- 10", Route: RouteInterstate, Geometry: geom},
		{Name: "US Hwy 101", Route: RouteUS, Geometry: geom},
		{Name: "State Rte 57", Route: RouteState, Geometry: geom},
		{Name: "County Rd 5", Route: RouteCounty, Geometry: geom},
		{Name: "", Route: RouteInterstate, Geometry: geom},
	}

	placements := PlaceLabels(highways, DefaultLabelPolicy())
	if len(placements) != 2 {
		t.Fatalf("Expected 2 placements, got %d", len(placements))
	}
	if placements[0].Name != "I- 10" {
		t.Errorf("Expected first label I- 10, got %s", placements[0].Name)
	}
	if placements[1].Name != "US Hwy 101" {
		t.Errorf("Expected second label US Hwy 101, got %s", placements[1].Name)
	}
}

// TestPlaceLabelsDeduplicate tests that split route records label once
func TestPlaceLabelsDeduplicate(t *testing.T) {
	geom := orb.MultiLineString{{{0, 0}, {1, 0}}}
	highways := []Highway{
		{Name: "I- 10", Route: RouteInterstate, Geometry: geom},
		{Name: "I- 10", Route: RouteInterstate, Geometry: geom},
		{Name: "I- 10", Route: RouteInterstate, Geometry: geom},
	}

	placements := PlaceLabels(highways, DefaultLabelPolicy())
	if len(placements) != 1 {
		t.Errorf("Expected 1 placement, got %d", len(placements))
	}
}

// TestPlaceLabelsCap tests the label count cap
func TestPlaceLabelsCap(t *testing.T) {
	geom := orb.MultiLineString{{{0, 0}, {1, 0}}}
	var highways []Highway
	for i := 0; i < 30; i++ {
		highways = append(highways, Highway{
			Name:     "I- " + string(rune('A'+i)),
			Route:    RouteInterstate,
			Geometry: geom,
		})
	}

	placements := PlaceLabels(highways, LabelPolicy{MaxLabels: 12})
	if len(placements) != 12 {
		t.Errorf("Expected 12 placements, got %d", len(placements))
	}
}

// TestPlaceLabelsLongestPart tests that multi-part routes anchor on the
// longest part
func TestPlaceLabelsLongestPart(t *testing.T) {
	highways := []Highway{{
		Name:  "I- 15",
		Route: RouteInterstate,
		Geometry: orb.MultiLineString{
			{{0, 0}, {0.1, 0}},
			{{5, 5}, {9, 5}},
		},
	}}

	placements := PlaceLabels(highways, DefaultLabelPolicy())
	if len(placements) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(placements))
	}
	if placements[0].Anchor.Lat() != 5 {
		t.Errorf("Expected anchor on the long part at lat 5, got %v", placements[0].Anchor)
	}
}
