package tigermap

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// RegionSpec selects the counties the map covers.
//
// Matching is exact on the NAME attribute, qualified by the state FIPS code
// so that, say, Orange County CA is not confused with Orange County FL in
// the national county file.
type RegionSpec struct {
	// Counties is the allow-list of county NAME values, in display order.
	Counties []string

	// StateFP is the state FIPS code counties must belong to
	// ("06" = California).
	StateFP string

	// Buffer expands the county union bounds by this many degrees before
	// highway selection, so roads are not clipped at the exact edge.
	Buffer float64
}

// DefaultRegionSpec returns the fixed four-county Southern California
// region.
func DefaultRegionSpec() RegionSpec {
	return RegionSpec{
		Counties: []string{"Los Angeles", "Orange", "Riverside", "San Bernardino"},
		StateFP:  "06",
		Buffer:   0.05,
	}
}

// contains reports whether name is on the allow-list.
func (s RegionSpec) contains(name string) bool {
	for _, c := range s.Counties {
		if c == name {
			return true
		}
	}
	return false
}

// County is a selected county: its name and dissolved boundary geometry.
type County struct {
	Name     string
	Geometry orb.MultiPolygon
}

// Bounds returns the county's bounding box.
func (c County) Bounds() Bounds {
	return boundsFromOrb(c.Geometry.Bound())
}

// Centroid returns the area-weighted centroid of the county polygons,
// used as the county label anchor.
func (c County) Centroid() orb.Point {
	centroid, _ := planar.CentroidArea(c.Geometry)
	return centroid
}

// Highway is a selected road record.
type Highway struct {
	Name     string
	Route    RouteType
	Geometry orb.MultiLineString
}

// FilterCounties returns the features whose NAME attribute is on the
// allow-list and whose STATEFP matches the spec.
//
// The result preserves input order, and the operation is idempotent:
// filtering an already-filtered slice returns the same records.
func FilterCounties(features []Feature, spec RegionSpec) []Feature {
	result := make([]Feature, 0, len(spec.Counties))
	for _, f := range features {
		name, _ := f.Attribute("NAME")
		statefp, _ := f.Attribute("STATEFP")
		if spec.StateFP != "" && statefp != spec.StateFP {
			continue
		}
		if !spec.contains(name) {
			continue
		}
		result = append(result, f)
	}
	return result
}

// SelectCounties filters the county layer by the spec and dissolves
// multi-part records into one County per name.
//
// Every allow-listed name present in the source appears exactly once in the
// result, ordered by the allow-list. Names absent from the source are
// simply missing; an empty result is not an error (it yields an empty map).
func SelectCounties(layer *Layer, spec RegionSpec) []County {
	matched := FilterCounties(layer.Features(), spec)

	byName := make(map[string]orb.MultiPolygon, len(spec.Counties))
	for _, f := range matched {
		name, _ := f.Attribute("NAME")
		byName[name] = append(byName[name], polygonsOf(f.Geometry())...)
	}

	result := make([]County, 0, len(byName))
	for _, name := range spec.Counties {
		geom, ok := byName[name]
		if !ok {
			continue
		}
		result = append(result, County{Name: name, Geometry: geom})
	}
	return result
}

// CountyUnionBounds returns the union of the counties' bounding boxes.
// Returns a zero Bounds when the slice is empty.
func CountyUnionBounds(counties []County) Bounds {
	var union Bounds
	for i, c := range counties {
		if i == 0 {
			union = c.Bounds()
			continue
		}
		union = union.Union(c.Bounds())
	}
	return union
}

// SelectHighways returns the road records intersecting the extent,
// converted to Highways and ordered by source record ID.
//
// Intersection is tested on bounding boxes via the layer's spatial index:
// roads fully outside the (already buffered) extent are excluded, roads
// crossing its edge are included.
func SelectHighways(layer *Layer, extent Bounds) []Highway {
	if !extent.IsValid() {
		return nil
	}

	features := layer.FeaturesInBounds(extent)
	result := make([]Highway, 0, len(features))
	for _, f := range features {
		lines := lineStringsOf(f.Geometry())
		if len(lines) == 0 {
			continue
		}
		code, _ := f.Attribute("RTTYP")
		result = append(result, Highway{
			Name:     f.Name(),
			Route:    RouteTypeFromCode(code),
			Geometry: lines,
		})
	}
	return result
}

// polygonsOf flattens a geometry into its polygons.
func polygonsOf(g orb.Geometry) orb.MultiPolygon {
	switch geom := g.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{geom}
	case orb.MultiPolygon:
		return geom
	default:
		return nil
	}
}

// lineStringsOf flattens a geometry into its line strings.
func lineStringsOf(g orb.Geometry) orb.MultiLineString {
	switch geom := g.(type) {
	case orb.LineString:
		return orb.MultiLineString{geom}
	case orb.MultiLineString:
		return geom
	default:
		return nil
	}
}
