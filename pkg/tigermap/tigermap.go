// Package tigermap renders static county/highway maps from US Census
// TIGER/Line shapefiles.
//
// The package loads a county polygon layer and a primary-roads polyline
// layer, filters them to a fixed allow-list of counties, places rotated
// highway labels, and exports the rendered map as PNG and PDF. Most callers
// should use Generate with a Config; the lower-level Loader, filter and
// renderer APIs are exposed for programs that need finer control.
package tigermap

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/beetlebugorg/tigermap/internal/shapefile"
)

// Loader reads TIGER/Line shapefiles.
//
// Create a loader with NewLoader and use Load or LoadWithOptions to read a
// layer.
type Loader interface {
	// Load reads a shapefile and returns the parsed layer.
	//
	// The filename should point to the .shp file; the matching .dbf in the
	// same directory supplies attributes. Returns an error if the file
	// cannot be read or decoded.
	Load(filename string) (*Layer, error)

	// LoadWithOptions loads a shapefile with custom options.
	//
	// Use LoadOptions to control validation, error handling, and attribute
	// filtering.
	LoadWithOptions(filename string, opts LoadOptions) (*Layer, error)
}

// NewLoader creates a new shapefile loader with default settings.
//
// Example:
//
//	loader := tigermap.NewLoader()
//	counties, err := loader.Load("tl_2023_us_county.shp")
func NewLoader() Loader {
	return &loaderWrapper{}
}

// loaderWrapper wraps the internal reader and converts types.
type loaderWrapper struct{}

func (l *loaderWrapper) Load(filename string) (*Layer, error) {
	return l.LoadWithOptions(filename, DefaultLoadOptions())
}

func (l *loaderWrapper) LoadWithOptions(filename string, opts LoadOptions) (*Layer, error) {
	internal, err := shapefile.ReadWithOptions(filename, shapefile.ReadOptions{
		SkipInvalidGeometry: opts.SkipInvalidGeometry,
		ValidateGeometry:    opts.ValidateGeometry,
		AttributeFilter:     opts.AttributeFilter,
	})
	if err != nil {
		return nil, err
	}
	return convertLayer(internal), nil
}

// Layer represents one loaded shapefile layer.
//
// A layer contains the file's records as Features plus an R-tree spatial
// index for bounding-box queries. All fields are private to maintain
// encapsulation.
type Layer struct {
	features     []Feature
	spatialIndex *spatialIndex
	bounds       Bounds
	path         string
}

// Features returns all features in the layer, in file order.
func (l *Layer) Features() []Feature {
	return l.features
}

// FeatureCount returns the number of features in the layer.
func (l *Layer) FeatureCount() int {
	return len(l.features)
}

// Bounds returns the minimum bounding box containing all features.
func (l *Layer) Bounds() Bounds {
	return l.bounds
}

// Path returns the filename the layer was loaded from.
func (l *Layer) Path() string {
	return l.path
}

// FeaturesInBounds returns all features whose bounding box intersects the
// given bounds.
//
// Results are sorted by feature ID so downstream output is reproducible
// regardless of R-tree traversal order.
//
// Example:
//
//	window := tigermap.Bounds{
//	    MinLon: -118.5, MaxLon: -117.0,
//	    MinLat: 33.5, MaxLat: 34.5,
//	}
//	roads := highways.FeaturesInBounds(window)
func (l *Layer) FeaturesInBounds(bounds Bounds) []Feature {
	if l.spatialIndex == nil || l.spatialIndex.rtree == nil {
		return l.featuresInBoundsLinear(bounds)
	}

	spatials := l.spatialIndex.rtree.SearchIntersect(bounds.rect())

	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		result = append(result, indexed.feature)
	}
	sortFeaturesByID(result)
	return result
}

// featuresInBoundsLinear performs linear search when no spatial index exists.
func (l *Layer) featuresInBoundsLinear(bounds Bounds) []Feature {
	result := make([]Feature, 0, len(l.features)/10)
	for _, feature := range l.features {
		if bounds.Intersects(featureBounds(feature)) {
			result = append(result, feature)
		}
	}
	return result
}

// Feature represents one record of a TIGER/Line layer.
//
// Access feature data via methods:
//   - ID() returns the record index within the source file
//   - Name() returns the display name (FULLNAME or NAME attribute)
//   - Geometry() returns the spatial representation
//   - Attribute(name) returns a specific DBF attribute value
type Feature struct {
	id         int64
	attributes map[string]string
	geometry   orb.Geometry
}

// ID returns the zero-based record index within the source shapefile.
func (f *Feature) ID() int64 {
	return f.id
}

// Name returns the feature's display name.
//
// TIGER primary-road records carry FULLNAME ("I- 10", "US Hwy 101");
// county records carry NAME ("Los Angeles"). FULLNAME wins when both exist.
func (f *Feature) Name() string {
	if v, ok := f.attributes["FULLNAME"]; ok && v != "" {
		return v
	}
	return f.attributes["NAME"]
}

// Geometry returns the spatial representation of the feature in
// [lon, lat] order.
func (f *Feature) Geometry() orb.Geometry {
	return f.geometry
}

// Attributes returns all DBF attributes as a map.
//
// Common TIGER/Line attributes:
//   - "NAME": county name
//   - "STATEFP": state FIPS code ("06" = California)
//   - "FULLNAME": full road name
//   - "RTTYP": route type code (I, U, S, C, M, O)
func (f *Feature) Attributes() map[string]string {
	return f.attributes
}

// Attribute returns a specific attribute value by DBF column name.
//
// Returns the value and true if the attribute exists, or "" and false if
// not found.
func (f *Feature) Attribute(name string) (string, bool) {
	val, ok := f.attributes[name]
	return val, ok
}

// spatialIndex provides O(log n) bounding-box queries using an R-tree.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  Bounds
}

// Bounds implements rtreego.Spatial.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return f.bounds.rect()
}

// convertLayer converts an internal layer to the public API layer.
func convertLayer(internal *shapefile.Layer) *Layer {
	features := make([]Feature, len(internal.Features))
	for i, f := range internal.Features {
		features[i] = Feature{
			id:         f.ID,
			attributes: f.Attributes,
			geometry:   f.Geometry,
		}
	}

	layer := &Layer{
		features: features,
		path:     internal.Path(),
	}
	layer.buildSpatialIndex()
	return layer
}

// buildSpatialIndex creates the R-tree index and accumulates layer bounds.
func (l *Layer) buildSpatialIndex() {
	if len(l.features) == 0 {
		return
	}

	// 2D R-tree, 25..50 children per node. Same parameters as the chart
	// loaders this package grew out of; they behave well for layers in the
	// tens of thousands of records.
	rtree := rtreego.NewTree(2, 25, 50)

	var layerBounds *Bounds
	for i := range l.features {
		fb := featureBounds(l.features[i])
		rtree.Insert(&indexedFeature{
			feature: l.features[i],
			bounds:  fb,
		})

		if layerBounds == nil {
			b := fb
			layerBounds = &b
		} else {
			*layerBounds = layerBounds.Union(fb)
		}
	}

	l.spatialIndex = &spatialIndex{rtree: rtree}
	if layerBounds != nil {
		l.bounds = *layerBounds
	}
}

// featureBounds computes the bounding box of a feature's geometry.
func featureBounds(f Feature) Bounds {
	if f.geometry == nil {
		return Bounds{}
	}
	return boundsFromOrb(f.geometry.Bound())
}

// sortFeaturesByID sorts features in place by record ID.
func sortFeaturesByID(features []Feature) {
	sort.Slice(features, func(i, j int) bool {
		return features[i].id < features[j].id
	})
}
