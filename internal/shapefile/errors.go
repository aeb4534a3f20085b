package shapefile

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
)

// ErrInvalidCoordinate indicates a coordinate outside valid geographic bounds.
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrUnsupportedShapeType indicates a shapefile record type this reader does not handle.
type ErrUnsupportedShapeType struct {
	Type shp.ShapeType
}

func (e *ErrUnsupportedShapeType) Error() string {
	return fmt.Sprintf("unsupported shape type: %d", e.Type)
}

// ErrInvalidGeometry indicates a geometry that violates shapefile rules.
type ErrInvalidGeometry struct {
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// ErrEmptyLayer indicates a shapefile with no records.
type ErrEmptyLayer struct {
	Path string
}

func (e *ErrEmptyLayer) Error() string {
	return fmt.Sprintf("shapefile contains no records: %s", e.Path)
}
