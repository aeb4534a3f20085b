package main

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/tigermap/pkg/tigermap"
)

func main() {
	// A road running northeast with uneven vertex spacing
	road := orb.LineString{
		{-117.90, 33.80},
		{-117.85, 33.82},
		{-117.70, 33.90},
		{-117.68, 33.91},
	}

	anchor, angle, ok := tigermap.PlaceLabel(road)
	if !ok {
		fmt.Println("road too short to label")
		return
	}
	fmt.Printf("Anchor: [%.4f, %.4f]\n", anchor.Lon(), anchor.Lat())
	fmt.Printf("Angle:  %.1f degrees\n", angle)

	// Label a set of highway records: majors only, deduplicated, capped
	highways := []tigermap.Highway{
		{Name: "I- 10", Route: tigermap.RouteInterstate, Geometry: orb.MultiLineString{road}},
		{Name: "I- 10", Route: tigermap.RouteInterstate, Geometry: orb.MultiLineString{road}},
		{Name: "US Hwy 101", Route: tigermap.RouteUS, Geometry: orb.MultiLineString{road}},
		{Name: "State Rte 57", Route: tigermap.RouteState, Geometry: orb.MultiLineString{road}},
	}
	for _, p := range tigermap.PlaceLabels(highways, tigermap.DefaultLabelPolicy()) {
		fmt.Printf("%-12s %s at %.1f degrees\n", p.Name, p.Route.Label(), p.Angle)
	}
}
