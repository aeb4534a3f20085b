package shapefile

import (
	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// shapeToGeometry converts a go-shp record into an orb geometry.
//
// Shapefiles store polylines and polygons as a flat point array plus part
// offsets; parts are split here. Polygon ring winding follows the ESRI
// convention: clockwise rings are outer shells, counter-clockwise rings are
// holes belonging to the preceding shell.
func shapeToGeometry(shape shp.Shape) (orb.Geometry, error) {
	switch s := shape.(type) {
	case *shp.Point:
		return orb.Point{s.X, s.Y}, nil

	case *shp.MultiPoint:
		mp := make(orb.MultiPoint, 0, len(s.Points))
		for _, p := range s.Points {
			mp = append(mp, orb.Point{p.X, p.Y})
		}
		return mp, nil

	case *shp.PolyLine:
		parts := splitParts(s.Points, s.Parts)
		mls := make(orb.MultiLineString, 0, len(parts))
		for _, part := range parts {
			if len(part) < 2 {
				// A one-point part cannot form a line segment.
				continue
			}
			ls := make(orb.LineString, 0, len(part))
			for _, p := range part {
				ls = append(ls, orb.Point{p.X, p.Y})
			}
			mls = append(mls, ls)
		}
		return mls, nil

	case *shp.Polygon:
		parts := splitParts(s.Points, s.Parts)
		return assemblePolygons(parts), nil

	default:
		return nil, &ErrUnsupportedShapeType{Type: shapeType(shape)}
	}
}

// splitParts slices the flat shapefile point array into its parts.
// Part offsets outside the array are clamped rather than rejected;
// malformed offsets show up in the wild and the usable points are kept.
func splitParts(points []shp.Point, parts []int32) [][]shp.Point {
	if len(parts) == 0 {
		if len(points) == 0 {
			return nil
		}
		return [][]shp.Point{points}
	}

	out := make([][]shp.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 {
			start = 0
		}
		if end > int32(len(points)) {
			end = int32(len(points))
		}
		if start >= end {
			continue
		}
		out = append(out, points[start:end])
	}
	return out
}

// assemblePolygons groups polygon parts into shells and holes by winding.
func assemblePolygons(parts [][]shp.Point) orb.MultiPolygon {
	var result orb.MultiPolygon
	for _, part := range parts {
		if len(part) < 3 {
			// Degenerate ring, skip (mirrors lenient handling of
			// degenerate geometry elsewhere in this package).
			continue
		}
		ring := make(orb.Ring, 0, len(part)+1)
		for _, p := range part {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		ring = ensureRingClosure(ring)

		// ESRI winding: CW = shell. A hole arriving before any shell
		// indicates a malformed file; promote it to a shell so the
		// geometry is still usable.
		if ring.Orientation() == orb.CW || len(result) == 0 {
			result = append(result, orb.Polygon{ring})
		} else {
			last := len(result) - 1
			result[last] = append(result[last], ring)
		}
	}
	return result
}

// ensureRingClosure ensures a ring is closed (first coordinate == last).
func ensureRingClosure(ring orb.Ring) orb.Ring {
	if len(ring) < 3 {
		return ring
	}
	first := ring[0]
	last := ring[len(ring)-1]
	if first == last {
		return ring
	}
	return append(ring, first)
}

// shapeType reports the shape type constant for a concrete go-shp value.
func shapeType(shape shp.Shape) shp.ShapeType {
	switch shape.(type) {
	case *shp.Null:
		return shp.NULL
	case *shp.Point:
		return shp.POINT
	case *shp.PolyLine:
		return shp.POLYLINE
	case *shp.Polygon:
		return shp.POLYGON
	case *shp.MultiPoint:
		return shp.MULTIPOINT
	case *shp.PointZ:
		return shp.POINTZ
	case *shp.PolyLineZ:
		return shp.POLYLINEZ
	case *shp.PolygonZ:
		return shp.POLYGONZ
	case *shp.PointM:
		return shp.POINTM
	case *shp.PolyLineM:
		return shp.POLYLINEM
	case *shp.PolygonM:
		return shp.POLYGONM
	default:
		return shp.NULL
	}
}
