package tigermap

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Bounds is a geographic bounding box in decimal degrees.
type Bounds struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Intersects reports whether the two boxes overlap (touching edges count).
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinLon <= o.MaxLon && b.MaxLon >= o.MinLon &&
		b.MinLat <= o.MaxLat && b.MaxLat >= o.MinLat
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	out := b
	if o.MinLon < out.MinLon {
		out.MinLon = o.MinLon
	}
	if o.MinLat < out.MinLat {
		out.MinLat = o.MinLat
	}
	if o.MaxLon > out.MaxLon {
		out.MaxLon = o.MaxLon
	}
	if o.MaxLat > out.MaxLat {
		out.MaxLat = o.MaxLat
	}
	return out
}

// Expand returns the box grown by buffer degrees on every side.
func (b Bounds) Expand(buffer float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - buffer,
		MinLat: b.MinLat - buffer,
		MaxLon: b.MaxLon + buffer,
		MaxLat: b.MaxLat + buffer,
	}
}

// Width returns the longitudinal extent in degrees.
func (b Bounds) Width() float64 { return b.MaxLon - b.MinLon }

// Height returns the latitudinal extent in degrees.
func (b Bounds) Height() float64 { return b.MaxLat - b.MinLat }

// Center returns the midpoint of the box.
func (b Bounds) Center() orb.Point {
	return orb.Point{(b.MinLon + b.MaxLon) / 2, (b.MinLat + b.MaxLat) / 2}
}

// IsValid reports whether the box has positive area.
func (b Bounds) IsValid() bool {
	return b.MaxLon > b.MinLon && b.MaxLat > b.MinLat
}

// rect converts the box into an rtreego query rectangle.
// R-tree rectangles need non-zero extents, so degenerate boxes (point or
// line features) are padded by a small epsilon (~11 m at the equator).
func (b Bounds) rect() rtreego.Rect {
	const epsilon = 0.0001

	lonLength := b.MaxLon - b.MinLon
	latLength := b.MaxLat - b.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(rtreego.Point{b.MinLon, b.MinLat}, []float64{lonLength, latLength})
	return rect
}

// boundsFromOrb converts an orb bounding box.
func boundsFromOrb(b orb.Bound) Bounds {
	return Bounds{
		MinLon: b.Min.Lon(),
		MinLat: b.Min.Lat(),
		MaxLon: b.Max.Lon(),
		MaxLat: b.Max.Lat(),
	}
}
