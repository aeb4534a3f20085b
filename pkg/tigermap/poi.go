package tigermap

import (
	"github.com/paulmach/orb"
)

// PointOfInterest is the single fixed marker rendered on the map.
type PointOfInterest struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// DefaultPointOfInterest returns the marker this map was built for.
func DefaultPointOfInterest() PointOfInterest {
	return PointOfInterest{
		Name:      "Orange County Masjid",
		Address:   "1027 E Philadelphia St, Ontario, CA 91761",
		Latitude:  34.0633,
		Longitude: -117.6509,
	}
}

// Point returns the location as an orb point in [lon, lat] order.
func (p PointOfInterest) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
