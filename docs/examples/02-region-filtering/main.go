package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/tigermap/pkg/tigermap"
)

func main() {
	loader := tigermap.NewLoader()

	// Only the attributes the filter needs
	counties, err := loader.LoadWithOptions("tl_2023_us_county.shp", tigermap.LoadOptions{
		ValidateGeometry: true,
		AttributeFilter:  []string{"NAME", "STATEFP"},
	})
	if err != nil {
		log.Fatal(err)
	}

	highways, err := loader.LoadWithOptions("tl_2023_us_primaryroads.shp", tigermap.LoadOptions{
		ValidateGeometry: true,
		AttributeFilter:  []string{"FULLNAME", "RTTYP"},
	})
	if err != nil {
		log.Fatal(err)
	}

	// Select the four-county region and the roads crossing it
	region := tigermap.DefaultRegionSpec()
	selected := tigermap.SelectCounties(counties, region)
	extent := tigermap.CountyUnionBounds(selected).Expand(region.Buffer)
	roads := tigermap.SelectHighways(highways, extent)

	for _, county := range selected {
		fmt.Printf("%-16s %v\n", county.Name, county.Bounds())
	}
	fmt.Printf("Roads in region: %d\n", len(roads))
}
