package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/tigermap/pkg/tigermap"
)

func main() {
	// Create loader
	loader := tigermap.NewLoader()

	// Load county layer
	counties, err := loader.Load("tl_2023_us_county.shp")
	if err != nil {
		log.Fatal(err)
	}

	// Print layer info
	fmt.Printf("Layer: %s\n", counties.Path())
	fmt.Printf("Features: %d\n", counties.FeatureCount())

	// Get layer bounds
	bounds := counties.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinLon, bounds.MinLat,
		bounds.MaxLon, bounds.MaxLat)
}
