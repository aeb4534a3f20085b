package shapefile

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ValidateCoordinate validates a single coordinate pair.
// TIGER/Line data is unprojected WGS-84, so every vertex must lie within
// geographic bounds.
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidateGeometry validates every vertex of a geometry.
//
// Empty geometries are valid: degenerate records are skipped at render
// time rather than failing the whole load.
func ValidateGeometry(geometry orb.Geometry) error {
	if geometry == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}

	switch g := geometry.(type) {
	case orb.Point:
		return validatePoint(g)
	case orb.MultiPoint:
		for _, p := range g {
			if err := validatePoint(p); err != nil {
				return err
			}
		}
	case orb.LineString:
		return validateLine(g)
	case orb.MultiLineString:
		for _, ls := range g {
			if err := validateLine(ls); err != nil {
				return err
			}
		}
	case orb.Polygon:
		return validateRings(g)
	case orb.MultiPolygon:
		for _, poly := range g {
			if err := validateRings(poly); err != nil {
				return err
			}
		}
	default:
		return &ErrInvalidGeometry{Reason: fmt.Sprintf("unexpected geometry type %T", geometry)}
	}
	return nil
}

func validatePoint(p orb.Point) error {
	return ValidateCoordinate(p.Lat(), p.Lon())
}

func validateLine(ls orb.LineString) error {
	for i, p := range ls {
		if err := validatePoint(p); err != nil {
			return &ErrInvalidGeometry{Reason: fmt.Sprintf("vertex %d invalid: %v", i, err)}
		}
	}
	return nil
}

func validateRings(poly orb.Polygon) error {
	for r, ring := range poly {
		for i, p := range ring {
			if err := validatePoint(p); err != nil {
				return &ErrInvalidGeometry{Reason: fmt.Sprintf("ring %d vertex %d invalid: %v", r, i, err)}
			}
		}
	}
	return nil
}
