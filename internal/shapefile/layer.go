package shapefile

import (
	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// Feature is a single shapefile record: one geometry plus its DBF attribute row.
//
// Attribute values are the raw DBF strings with surrounding whitespace
// trimmed; numeric interpretation is left to the caller.
type Feature struct {
	// ID is the zero-based record index within the shapefile.
	ID int64
	// Attributes maps DBF column names (e.g. "NAME", "RTTYP") to values.
	Attributes map[string]string
	// Geometry is the spatial representation in [lon, lat] order.
	Geometry orb.Geometry
}

// Layer is the result of reading one shapefile: every record of the file,
// in file order.
type Layer struct {
	path      string
	shapeType shp.ShapeType
	Features  []Feature
}

// Path returns the filename the layer was read from.
func (l *Layer) Path() string { return l.path }

// ShapeType returns the declared shape type of the source file
// (shp.POINT, shp.POLYLINE, shp.POLYGON, ...).
func (l *Layer) ShapeType() shp.ShapeType { return l.shapeType }

// FeatureCount returns the number of records in the layer.
func (l *Layer) FeatureCount() int { return len(l.Features) }

// Bound returns the minimum bounding box containing all feature geometries.
// Returns a zero bound for an empty layer.
func (l *Layer) Bound() orb.Bound {
	var bound orb.Bound
	for i, f := range l.Features {
		if i == 0 {
			bound = f.Geometry.Bound()
			continue
		}
		bound = bound.Union(f.Geometry.Bound())
	}
	return bound
}
