// Package shapefile reads ESRI shapefiles (.shp plus the .dbf attribute
// table) into orb geometries.
//
// The package handles the parts this project needs from the format: 2D
// points, polylines and polygons, part splitting, polygon ring winding, and
// DBF attribute extraction. It is deliberately not a complete shapefile
// implementation; unsupported record types surface as typed errors.
package shapefile

import (
	"fmt"
	"os"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// ReadOptions configures reading behavior.
type ReadOptions struct {
	// SkipInvalidGeometry: if true, records whose geometry fails conversion
	// or validation are dropped instead of failing the read.
	// Default: false (return error).
	SkipInvalidGeometry bool

	// ValidateGeometry: if true, validate all coordinates against
	// geographic bounds.
	// Default: true.
	ValidateGeometry bool

	// AttributeFilter: if non-empty, only the named DBF columns are
	// retained on each feature. Empty means keep all columns.
	AttributeFilter []string
}

// DefaultReadOptions returns read options with defaults.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		SkipInvalidGeometry: false,
		ValidateGeometry:    true,
		AttributeFilter:     nil,
	}
}

// Read reads a shapefile with default options.
func Read(filename string) (*Layer, error) {
	return ReadWithOptions(filename, DefaultReadOptions())
}

// ReadWithOptions reads a shapefile and returns all its records as a Layer.
//
// The filename should point to the .shp file; the matching .dbf in the same
// directory supplies attributes.
func ReadWithOptions(filename string, opts ReadOptions) (*Layer, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("shapefile not found: %w", err)
	}

	r, err := shp.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", filename, err)
	}
	defer r.Close()

	fields := r.Fields()
	keep := attributeSet(opts.AttributeFilter)

	layer := &Layer{path: filename}
	for r.Next() {
		row, shape := r.Shape()

		geom, err := shapeToGeometry(shape)
		if err != nil {
			if opts.SkipInvalidGeometry {
				continue
			}
			return nil, fmt.Errorf("record %d: %w", row, err)
		}
		if opts.ValidateGeometry {
			if err := ValidateGeometry(geom); err != nil {
				if opts.SkipInvalidGeometry {
					continue
				}
				return nil, fmt.Errorf("record %d: %w", row, err)
			}
		}

		attrs := make(map[string]string, len(fields))
		for col, field := range fields {
			name := field.String()
			if keep != nil && !keep[name] {
				continue
			}
			attrs[name] = strings.TrimSpace(r.ReadAttribute(row, col))
		}

		layer.Features = append(layer.Features, Feature{
			ID:         int64(row),
			Attributes: attrs,
			Geometry:   geom,
		})
		if len(layer.Features) == 1 {
			layer.shapeType = shapeType(shape)
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile %s: %w", filename, err)
	}

	if len(layer.Features) == 0 {
		return nil, &ErrEmptyLayer{Path: filename}
	}

	return layer, nil
}

func attributeSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
