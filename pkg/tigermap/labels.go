package tigermap

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Placement is a computed highway label: where to draw the name and at what
// rotation so the text follows the road.
type Placement struct {
	// Name is the label text (the highway's full name).
	Name string

	// Anchor is the label position: the polyline vertex nearest the
	// arc-length midpoint.
	Anchor orb.Point

	// Angle is the text rotation in degrees counter-clockwise from
	// horizontal, normalized into (-90, +90] so labels never render
	// upside-down.
	Angle float64

	// Route colors the label box.
	Route RouteType
}

// LabelPolicy controls how many highway labels are placed.
type LabelPolicy struct {
	// MaxLabels caps the total number of labels on the map.
	MaxLabels int
}

// DefaultLabelPolicy returns the default cap of 12 labels, which keeps a
// four-county map readable at print size.
func DefaultLabelPolicy() LabelPolicy {
	return LabelPolicy{MaxLabels: 12}
}

// PlaceLabel computes the anchor and rotation for a single polyline.
//
// The anchor is the vertex nearest the polyline's midpoint by cumulative
// arc length, so placement is stable regardless of vertex density. The
// rotation comes from the direction vector between the vertices straddling
// the anchor (or the single adjacent segment at the polyline ends).
//
// Returns ok=false for polylines with fewer than two vertices. A
// zero-length direction vector yields a horizontal label rather than a
// division by zero.
func PlaceLabel(line orb.LineString) (anchor orb.Point, angle float64, ok bool) {
	if len(line) < 2 {
		return orb.Point{}, 0, false
	}

	mid := midpointVertex(line)
	anchor = line[mid]

	prev := mid - 1
	next := mid + 1
	if prev < 0 {
		prev = 0
	}
	if next > len(line)-1 {
		next = len(line) - 1
	}

	dx := line[next].X() - line[prev].X()
	dy := line[next].Y() - line[prev].Y()
	if dx == 0 && dy == 0 {
		return anchor, 0, true
	}

	angle = normalizeAngle(math.Atan2(dy, dx) * 180 / math.Pi)
	return anchor, angle, true
}

// midpointVertex returns the index of the vertex nearest half the
// polyline's total length.
func midpointVertex(line orb.LineString) int {
	total := 0.0
	cumulative := make([]float64, len(line))
	for i := 1; i < len(line); i++ {
		total += planar.Distance(line[i-1], line[i])
		cumulative[i] = total
	}

	half := total / 2
	best := 0
	bestDist := math.Abs(cumulative[0] - half)
	for i := 1; i < len(cumulative); i++ {
		d := math.Abs(cumulative[i] - half)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// normalizeAngle folds an angle in degrees into (-90, +90]. Exactly -90
// folds to +90 so vertical roads label the same way regardless of
// digitizing direction.
func normalizeAngle(angle float64) float64 {
	if angle > 90 {
		angle -= 180
	} else if angle <= -90 {
		angle += 180
	}
	return angle
}

// PlaceLabels computes label placements for the major routes among the
// given highways.
//
// Only Interstate and US routes with a non-empty name are labeled.
// Duplicate names (the same route split across many records) are labeled
// once, at the first occurrence in iteration order, and the total is capped
// by the policy. For multi-part geometries the longest part carries the
// label.
func PlaceLabels(highways []Highway, policy LabelPolicy) []Placement {
	placements := make([]Placement, 0, policy.MaxLabels)
	labeled := make(map[string]bool)

	for _, hw := range highways {
		if policy.MaxLabels > 0 && len(placements) >= policy.MaxLabels {
			break
		}
		if !hw.Route.IsMajor() || hw.Name == "" {
			continue
		}
		if labeled[hw.Name] {
			continue
		}

		line := longestPart(hw.Geometry)
		anchor, angle, ok := PlaceLabel(line)
		if !ok {
			continue
		}

		placements = append(placements, Placement{
			Name:   hw.Name,
			Anchor: anchor,
			Angle:  angle,
			Route:  hw.Route,
		})
		labeled[hw.Name] = true
	}
	return placements
}

// longestPart returns the line string with the greatest arc length.
func longestPart(mls orb.MultiLineString) orb.LineString {
	var longest orb.LineString
	best := -1.0
	for _, ls := range mls {
		length := planar.Length(ls)
		if length > best {
			longest = ls
			best = length
		}
	}
	return longest
}
