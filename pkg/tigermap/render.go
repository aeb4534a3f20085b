package tigermap

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// MapContent is the assembled, render-ready map: everything the renderer
// draws, independent of output format. Both exporters consume the same
// content, so PNG and PDF always show the same map.
type MapContent struct {
	// Extent is the geographic window of the map, including the highway
	// selection buffer.
	Extent Bounds

	Counties []County
	Highways []Highway
	Labels   []Placement
	POI      PointOfInterest
}

// Renderer draws MapContent onto a Canvas.
//
// The layer order is fixed and load-bearing: county fills, county borders,
// highway lines, highway labels, county labels, legend, title, marker,
// marker label. Later layers must not be occluded by earlier ones.
type Renderer struct {
	Style Style
}

// NewRenderer creates a renderer with the given style.
func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Render draws the full map.
//
// Content with an invalid extent (nothing matched the region filter)
// degrades to a background-and-title page rather than failing.
func (r *Renderer) Render(c Canvas, m *MapContent) {
	w, h := c.Size()

	if !m.Extent.IsValid() {
		r.drawTitle(c, w)
		return
	}

	proj := newProjection(m.Extent, w, h, r.Style.Margin, r.titleBand())

	r.drawCountyFills(c, proj, m.Counties)
	r.drawCountyBorders(c, proj, m.Counties)
	r.drawHighways(c, proj, m.Highways)
	r.drawHighwayLabels(c, proj, m.Labels)
	r.drawCountyLabels(c, proj, m.Counties)
	r.drawLegend(c, w)
	r.drawTitle(c, w)
	r.drawMarker(c, proj, m.POI)
	r.drawMarkerLabel(c, proj, m.POI)
}

func (r *Renderer) titleBand() float64 {
	if r.Style.Title == "" {
		return 0
	}
	return r.Style.TitleBand
}

func (r *Renderer) drawCountyFills(c Canvas, proj projection, counties []County) {
	for _, county := range counties {
		rings := projectPolygons(proj, county.Geometry)
		c.FillPolygon(rings, r.Style.countyColor(county.Name), r.Style.CountyAlpha)
	}
}

func (r *Renderer) drawCountyBorders(c Canvas, proj projection, counties []County) {
	for _, county := range counties {
		rings := projectPolygons(proj, county.Geometry)
		c.StrokePolygon(rings, r.Style.CountyEdge, r.Style.CountyEdgeWidth, 1)
	}
}

// drawHighways strokes roads grouped by route type, interstates first, so
// within the road layer the major routes sit below the finer grades and
// every grade gets a consistent color.
func (r *Renderer) drawHighways(c Canvas, proj projection, highways []Highway) {
	order := []RouteType{RouteInterstate, RouteUS, RouteState, RouteCounty, RouteUnknown}
	for _, rt := range order {
		for _, hw := range highways {
			if hw.Route != rt {
				continue
			}
			for _, part := range hw.Geometry {
				c.Polyline(proj.projectLine(part), r.Style.highwayColor(rt), r.Style.HighwayWidth, r.Style.HighwayAlpha)
			}
		}
	}
}

func (r *Renderer) drawHighwayLabels(c Canvas, proj projection, labels []Placement) {
	const padX, padY = 6, 3
	for _, label := range labels {
		pos := proj.project(label.Anchor)
		tw, th := c.MeasureText(label.Name, r.Style.HighwayLabelSize, true)
		c.LabelBox(pos.X, pos.Y, tw+2*padX, th+2*padY, 4, label.Angle,
			r.Style.highwayColor(label.Route), 0.9, mustHex("#FFFFFF"), 1)
		c.Text(label.Name, pos.X, pos.Y, r.Style.HighwayLabelSize, true,
			mustHex("#FFFFFF"), label.Angle, 0.5, 0.5)
	}
}

func (r *Renderer) drawCountyLabels(c Canvas, proj projection, counties []County) {
	const padX, padY = 12, 8
	for _, county := range counties {
		pos := proj.project(county.Centroid())
		tw, th := c.MeasureText(county.Name, r.Style.CountyLabelSize, true)
		c.LabelBox(pos.X, pos.Y, tw+2*padX, th+2*padY, 6, 0,
			mustHex("#FFFFFF"), 0.9, mustHex("#808080"), 1)
		c.Text(county.Name, pos.X, pos.Y, r.Style.CountyLabelSize, true,
			mustHex("#333333"), 0, 0.5, 0.5)
	}
}

// drawLegend draws the highway color key in the top-right corner of the
// drawing area.
func (r *Renderer) drawLegend(c Canvas, w float64) {
	const (
		legendW   = 150.0
		pad       = 10.0
		sampleLen = 24.0
		itemStep  = 16.0
	)

	entries := []RouteType{RouteInterstate, RouteUS, RouteState, RouteCounty}
	legendH := pad + r.Style.LegendTitleSize + 8 + float64(len(entries))*itemStep + pad

	x := w - r.Style.Margin - legendW
	y := r.Style.Margin + r.titleBand()

	c.RoundedRect(x, y, legendW, legendH, 4, mustHex("#FFFFFF"), 0.9, mustHex("#000000"), 1)
	c.Text("HIGHWAYS", x+legendW/2, y+pad+r.Style.LegendTitleSize/2, r.Style.LegendTitleSize, true,
		mustHex("#000000"), 0, 0.5, 0.5)

	itemY := y + pad + r.Style.LegendTitleSize + 8
	for i, rt := range entries {
		cy := itemY + float64(i)*itemStep + itemStep/2
		c.Polyline([]XY{{X: x + pad, Y: cy}, {X: x + pad + sampleLen, Y: cy}},
			r.Style.highwayColor(rt), 3, 0.8)
		c.Text(rt.String()+" - "+rt.Label(), x+pad+sampleLen+8, cy, r.Style.LegendItemSize, true,
			mustHex("#000000"), 0, 0, 0.5)
	}
}

func (r *Renderer) drawTitle(c Canvas, w float64) {
	if r.Style.Title == "" {
		return
	}
	lines := strings.Split(r.Style.Title, "\n")
	lineStep := r.Style.TitleSize * 1.25
	for i, line := range lines {
		y := r.Style.Margin/2 + lineStep*(float64(i)+0.5)
		c.Text(line, w/2, y, r.Style.TitleSize, true, mustHex("#212121"), 0, 0.5, 0.5)
	}
}

func (r *Renderer) drawMarker(c Canvas, proj projection, poi PointOfInterest) {
	pos := proj.project(poi.Point())
	star := starPath(pos.X, pos.Y, r.Style.MarkerRadius)
	c.FillPolygon([][]XY{star}, r.Style.MarkerColor, 1)
	c.StrokePolygon([][]XY{star}, r.Style.MarkerOutline, 3, 1)
}

func (r *Renderer) drawMarkerLabel(c Canvas, proj projection, poi PointOfInterest) {
	const padX, padY, offset = 10, 8, 25
	pos := proj.project(poi.Point())

	lines := []string{poi.Name, poi.Address}
	var maxW float64
	lineH := r.Style.POILabelSize * 1.3
	for _, line := range lines {
		tw, _ := c.MeasureText(line, r.Style.POILabelSize, true)
		if tw > maxW {
			maxW = tw
		}
	}

	boxW := maxW + 2*padX
	boxH := float64(len(lines))*lineH + 2*padY
	boxX := pos.X + offset
	boxY := pos.Y - offset - boxH

	c.LabelBox(boxX+boxW/2, boxY+boxH/2, boxW, boxH, 8, 0,
		mustHex("#FFFFFF"), 0.95, mustHex("#228B22"), 2)
	for i, line := range lines {
		y := boxY + padY + lineH*(float64(i)+0.5)
		c.Text(line, boxX+padX, y, r.Style.POILabelSize, true,
			mustHex("#1B5E20"), 0, 0, 0.5)
	}
}

// projectPolygons flattens a multipolygon into projected rings.
func projectPolygons(proj projection, mp orb.MultiPolygon) [][]XY {
	var rings [][]XY
	for _, poly := range mp {
		for _, ring := range poly {
			rings = append(rings, proj.projectRing(ring))
		}
	}
	return rings
}

// starPath returns the ten vertices of a five-pointed star centered at
// (cx, cy), first point up.
func starPath(cx, cy, radius float64) []XY {
	const inner = 0.4
	pts := make([]XY, 0, 10)
	for i := 0; i < 10; i++ {
		r := radius
		if i%2 == 1 {
			r *= inner
		}
		angle := (-90 + float64(i)*36) * math.Pi / 180
		pts = append(pts, XY{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		})
	}
	return pts
}
