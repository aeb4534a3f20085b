package tigermap

import (
	"fmt"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHexColor parses a "#RRGGBB" color string.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q (want #RRGGBB)", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// mustHex parses a hex color known to be valid at compile time.
func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Style holds every visual parameter of the map. All values are fixed for a
// given run; DefaultStyle returns the print configuration.
type Style struct {
	// Page size in inches and the raster export resolution.
	WidthInches  float64
	HeightInches float64
	DPI          int

	// Margin around the drawing area, in typographic points. TitleBand is
	// extra space reserved at the top when Title is non-empty.
	Margin    float64
	TitleBand float64

	Background Color

	// County fill colors by NAME; CountyFallback covers names without an
	// entry. Borders are drawn in CountyEdge at CountyEdgeWidth points.
	CountyColors    map[string]Color
	CountyFallback  Color
	CountyEdge      Color
	CountyEdgeWidth float64
	CountyAlpha     float64

	// Highway stroke colors by route type, width in points.
	HighwayColors map[RouteType]Color
	HighwayWidth  float64
	HighwayAlpha  float64

	// Font sizes in points.
	CountyLabelSize  float64
	HighwayLabelSize float64
	POILabelSize     float64
	TitleSize        float64
	LegendTitleSize  float64
	LegendItemSize   float64

	// Point-of-interest marker: a filled star with a light outline.
	MarkerColor   Color
	MarkerOutline Color
	MarkerRadius  float64

	Title string
}

// DefaultStyle returns the fixed print style: a 24x24 inch page at 300 DPI
// with the Southern California county palette.
func DefaultStyle() Style {
	return Style{
		WidthInches:  24,
		HeightInches: 24,
		DPI:          300,

		Margin:    36,
		TitleBand: 72,

		Background: mustHex("#FFFFFF"),

		CountyColors: map[string]Color{
			"Los Angeles":    mustHex("#FFE5CC"), // light peach
			"Orange":         mustHex("#FFD1DC"), // soft coral
			"Riverside":      mustHex("#FFF8DC"), // pale yellow
			"San Bernardino": mustHex("#FFA07A"), // light salmon
		},
		CountyFallback:  mustHex("#F0F0F0"),
		CountyEdge:      mustHex("#CCCCCC"),
		CountyEdgeWidth: 1.0,
		CountyAlpha:     0.8,

		HighwayColors: map[RouteType]Color{
			RouteInterstate: mustHex("#FF0000"),
			RouteUS:         mustHex("#0066CC"),
			RouteState:      mustHex("#FF6600"),
			RouteCounty:     mustHex("#666666"),
		},
		HighwayWidth: 2.0,
		HighwayAlpha: 0.8,

		CountyLabelSize:  18,
		HighwayLabelSize: 10,
		POILabelSize:     14,
		TitleSize:        24,
		LegendTitleSize:  12,
		LegendItemSize:   9,

		MarkerColor:   mustHex("#228B22"), // forest green
		MarkerOutline: mustHex("#FFFFFF"),
		MarkerRadius:  14,

		Title: "Southern California Counties & Highway Network\nLos Angeles • Orange • Riverside • San Bernardino",
	}
}

// countyColor returns the fill color for a county name.
func (s Style) countyColor(name string) Color {
	if c, ok := s.CountyColors[name]; ok {
		return c
	}
	return s.CountyFallback
}

// highwayColor returns the stroke color for a route type.
func (s Style) highwayColor(rt RouteType) Color {
	if c, ok := s.HighwayColors[rt]; ok {
		return c
	}
	return s.HighwayColors[RouteCounty]
}

// pageWidthPt returns the page width in typographic points (72 per inch).
func (s Style) pageWidthPt() float64 { return s.WidthInches * 72 }

// pageHeightPt returns the page height in typographic points.
func (s Style) pageHeightPt() float64 { return s.HeightInches * 72 }
