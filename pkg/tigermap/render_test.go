package tigermap

import (
	"testing"

	"github.com/paulmach/orb"
)

// recordingCanvas captures the sequence of draw operations so tests can
// assert layer ordering without rasterizing anything.
type recordingCanvas struct {
	ops   []string
	texts []string
}

func (c *recordingCanvas) Size() (float64, float64) { return 720, 720 }

func (c *recordingCanvas) FillPolygon(rings [][]XY, fill Color, alpha float64) {
	c.ops = append(c.ops, "fill")
}

func (c *recordingCanvas) StrokePolygon(rings [][]XY, stroke Color, width, alpha float64) {
	c.ops = append(c.ops, "stroke")
}

func (c *recordingCanvas) Polyline(pts []XY, stroke Color, width, alpha float64) {
	c.ops = append(c.ops, "polyline")
}

func (c *recordingCanvas) RoundedRect(x, y, w, h, radius float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64) {
	c.ops = append(c.ops, "rect")
}

func (c *recordingCanvas) LabelBox(cx, cy, w, h, radius, angle float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64) {
	c.ops = append(c.ops, "labelbox")
}

func (c *recordingCanvas) Text(s string, x, y, size float64, bold bool, col Color, angle, ax, ay float64) {
	c.ops = append(c.ops, "text")
	c.texts = append(c.texts, s)
}

func (c *recordingCanvas) MeasureText(s string, size float64, bold bool) (float64, float64) {
	return float64(len(s)) * size * 0.6, size
}

func (c *recordingCanvas) firstIndex(op string) int {
	for i, o := range c.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func (c *recordingCanvas) lastIndex(op string) int {
	last := -1
	for i, o := range c.ops {
		if o == op {
			last = i
		}
	}
	return last
}

func testContent() *MapContent {
	county := County{
		Name:     "Orange",
		Geometry: orb.MultiPolygon{squarePolygon(-118, 33.4, 0.8)},
	}
	highway := Highway{
		Name:     "I- 5",
		Route:    RouteInterstate,
		Geometry: orb.MultiLineString{{{-117.9, 33.5}, {-117.4, 34}}},
	}
	labels := PlaceLabels([]Highway{highway}, DefaultLabelPolicy())

	return &MapContent{
		Extent:   county.Bounds().Expand(0.05),
		Counties: []County{county},
		Highways: []Highway{highway},
		Labels:   labels,
		POI:      PointOfInterest{Name: "Test Site", Address: "1 Main St", Latitude: 33.8, Longitude: -117.6},
	}
}

// TestRenderLayerOrder tests that map layers draw in the documented order:
// fills under borders under roads under labels, marker on top of everything.
func TestRenderLayerOrder(t *testing.T) {
	canvas := &recordingCanvas{}
	renderer := NewRenderer(DefaultStyle())
	renderer.Render(canvas, testContent())

	countyFill := canvas.firstIndex("fill")
	countyBorder := canvas.firstIndex("stroke")
	road := canvas.firstIndex("polyline")
	label := canvas.firstIndex("labelbox")
	legend := canvas.firstIndex("rect")

	if countyFill == -1 || countyBorder == -1 || road == -1 || label == -1 || legend == -1 {
		t.Fatalf("Expected all layer types drawn, got ops %v", canvas.ops)
	}
	if !(countyFill < countyBorder && countyBorder < road && road < label && label < legend) {
		t.Errorf("Expected fill < border < road < label < legend, got %d %d %d %d %d",
			countyFill, countyBorder, road, label, legend)
	}

	// The marker star is the final fill, above the legend
	if canvas.lastIndex("fill") < legend {
		t.Error("Expected marker star drawn after legend")
	}
}

// TestRenderText tests that labels, legend, title and marker text all appear
func TestRenderText(t *testing.T) {
	canvas := &recordingCanvas{}
	renderer := NewRenderer(DefaultStyle())
	renderer.Render(canvas, testContent())

	want := []string{"I- 5", "Orange", "HIGHWAYS", "I - Interstate", "Test Site", "1 Main St"}
	for _, s := range want {
		if !containsText(canvas.texts, s) {
			t.Errorf("Expected text %q to be drawn, got %v", s, canvas.texts)
		}
	}

	// Two title lines
	if !containsText(canvas.texts, "Southern California Counties & Highway Network") {
		t.Error("Expected first title line to be drawn")
	}
}

// TestRenderInvalidExtent tests graceful degradation to a titled page
func TestRenderInvalidExtent(t *testing.T) {
	canvas := &recordingCanvas{}
	renderer := NewRenderer(DefaultStyle())
	renderer.Render(canvas, &MapContent{})

	for _, op := range canvas.ops {
		if op != "text" {
			t.Fatalf("Expected only title text for empty content, got ops %v", canvas.ops)
		}
	}
	if len(canvas.texts) == 0 {
		t.Error("Expected title to be drawn")
	}
}

// TestRenderNoTitle tests that an empty title suppresses the title band
func TestRenderNoTitle(t *testing.T) {
	style := DefaultStyle()
	style.Title = ""

	canvas := &recordingCanvas{}
	NewRenderer(style).Render(canvas, &MapContent{})

	if len(canvas.ops) != 0 {
		t.Errorf("Expected no draw ops, got %v", canvas.ops)
	}
}

func containsText(texts []string, s string) bool {
	for _, t := range texts {
		if t == s {
			return true
		}
	}
	return false
}
