package tigermap

import (
	"github.com/paulmach/orb"
)

// XY is a position on a canvas, in typographic points from the top-left
// corner.
type XY struct {
	X, Y float64
}

// Canvas is a drawing surface measured in typographic points (72 per inch).
//
// Both export backends implement it: the raster backend scales points to
// pixels at the configured DPI, the PDF backend draws in points directly.
// Rendering the same content through both therefore produces the same
// layout at the same physical size.
//
// Angles are in degrees, counter-clockwise as displayed. Alpha is 0..1.
type Canvas interface {
	// Size returns the canvas dimensions in points.
	Size() (w, h float64)

	// FillPolygon fills rings using the even-odd rule, so interior rings
	// become holes.
	FillPolygon(rings [][]XY, fill Color, alpha float64)

	// StrokePolygon strokes the outline of every ring.
	StrokePolygon(rings [][]XY, stroke Color, width, alpha float64)

	// Polyline strokes an open path.
	Polyline(pts []XY, stroke Color, width, alpha float64)

	// RoundedRect draws a filled, outlined rectangle with rounded corners.
	RoundedRect(x, y, w, h, radius float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64)

	// LabelBox draws a rounded rectangle centered at (cx, cy), rotated
	// about its center. Backing box for map labels.
	LabelBox(cx, cy, w, h, radius, angle float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64)

	// Text draws a single line of text. (ax, ay) anchor the string box at
	// (x, y): ax=0 left, ax=1 right, ay=0.5 vertical center. Rotation is
	// about the anchor point.
	Text(s string, x, y, size float64, bold bool, c Color, angle, ax, ay float64)

	// MeasureText returns the rendered width and height of s in points.
	MeasureText(s string, size float64, bold bool) (w, h float64)
}

// projection maps geographic coordinates onto a canvas with equal aspect,
// centered in the drawing area, latitude increasing upward.
type projection struct {
	extent  Bounds
	scale   float64 // points per degree
	originX float64 // canvas x of extent.MinLon
	originY float64 // canvas y of extent.MinLat (bottom edge of the extent)
}

// newProjection fits extent into a w-by-h canvas, leaving margin on every
// side plus titleBand at the top.
func newProjection(extent Bounds, w, h, margin, titleBand float64) projection {
	innerW := w - 2*margin
	innerH := h - 2*margin - titleBand

	sx := innerW / extent.Width()
	sy := innerH / extent.Height()
	scale := sx
	if sy < scale {
		scale = sy
	}

	drawnW := extent.Width() * scale
	drawnH := extent.Height() * scale

	return projection{
		extent:  extent,
		scale:   scale,
		originX: margin + (innerW-drawnW)/2,
		originY: margin + titleBand + (innerH-drawnH)/2 + drawnH,
	}
}

// project converts a geographic point to canvas coordinates.
func (p projection) project(pt orb.Point) XY {
	return XY{
		X: p.originX + (pt.Lon()-p.extent.MinLon)*p.scale,
		Y: p.originY - (pt.Lat()-p.extent.MinLat)*p.scale,
	}
}

// projectLine converts a line string to canvas coordinates.
func (p projection) projectLine(ls orb.LineString) []XY {
	out := make([]XY, len(ls))
	for i, pt := range ls {
		out[i] = p.project(pt)
	}
	return out
}

// projectRing converts a polygon ring to canvas coordinates.
func (p projection) projectRing(ring orb.Ring) []XY {
	out := make([]XY, len(ring))
	for i, pt := range ring {
		out[i] = p.project(pt)
	}
	return out
}
