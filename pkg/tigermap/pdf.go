package tigermap

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFCanvas draws onto a single-page vector PDF in typographic points.
//
// Text uses the built-in Helvetica faces, so the output has no embedded
// font payload and stays small even at print page sizes.
type PDFCanvas struct {
	pdf *fpdf.Fpdf

	widthPt  float64
	heightPt float64
}

// NewPDFCanvas creates a single-page PDF canvas sized per the style's page
// dimensions, filled with the background color.
func NewPDFCanvas(style Style) (*PDFCanvas, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size: fpdf.SizeType{
			Wd: style.pageWidthPt(),
			Ht: style.pageHeightPt(),
		},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	c := &PDFCanvas{
		pdf:      doc,
		widthPt:  style.pageWidthPt(),
		heightPt: style.pageHeightPt(),
	}

	bg := style.Background
	doc.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	doc.Rect(0, 0, c.widthPt, c.heightPt, "F")

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("create pdf canvas: %w", err)
	}
	return c, nil
}

// Size returns the canvas dimensions in points.
func (c *PDFCanvas) Size() (float64, float64) {
	return c.widthPt, c.heightPt
}

// WritePDF writes the document to a file.
func (c *PDFCanvas) WritePDF(path string) error {
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// FillPolygon fills rings with the even-odd rule.
func (c *PDFCanvas) FillPolygon(rings [][]XY, fill Color, alpha float64) {
	if len(rings) == 0 {
		return
	}
	c.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	c.pdf.SetAlpha(alpha, "Normal")
	c.tracePolygon(rings)
	c.pdf.DrawPath("f*")
	c.pdf.SetAlpha(1, "Normal")
}

// StrokePolygon strokes the outline of every ring.
func (c *PDFCanvas) StrokePolygon(rings [][]XY, stroke Color, width, alpha float64) {
	if len(rings) == 0 {
		return
	}
	c.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	c.pdf.SetLineWidth(width)
	c.pdf.SetAlpha(alpha, "Normal")
	c.tracePolygon(rings)
	c.pdf.DrawPath("S")
	c.pdf.SetAlpha(1, "Normal")
}

// Polyline strokes an open path.
func (c *PDFCanvas) Polyline(pts []XY, stroke Color, width, alpha float64) {
	if len(pts) < 2 {
		return
	}
	c.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	c.pdf.SetLineWidth(width)
	c.pdf.SetAlpha(alpha, "Normal")
	c.pdf.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.pdf.LineTo(p.X, p.Y)
	}
	c.pdf.DrawPath("S")
	c.pdf.SetAlpha(1, "Normal")
}

// RoundedRect draws a filled, outlined rounded rectangle.
func (c *PDFCanvas) RoundedRect(x, y, w, h, radius float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64) {
	c.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	c.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	c.pdf.SetLineWidth(strokeWidth)
	c.pdf.SetAlpha(fillAlpha, "Normal")
	c.pdf.RoundedRect(x, y, w, h, radius, "1234", "F")
	c.pdf.SetAlpha(1, "Normal")
	c.pdf.RoundedRect(x, y, w, h, radius, "1234", "D")
}

// LabelBox draws a rounded rectangle centered at (cx, cy), rotated about
// its center.
func (c *PDFCanvas) LabelBox(cx, cy, w, h, radius, angle float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64) {
	if angle != 0 {
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(angle, cx, cy)
		c.RoundedRect(cx-w/2, cy-h/2, w, h, radius, fill, fillAlpha, stroke, strokeWidth)
		c.pdf.TransformEnd()
		return
	}
	c.RoundedRect(cx-w/2, cy-h/2, w, h, radius, fill, fillAlpha, stroke, strokeWidth)
}

// Text draws a single line of anchored, optionally rotated text.
func (c *PDFCanvas) Text(s string, x, y, size float64, bold bool, col Color, angle, ax, ay float64) {
	c.pdf.SetFont("Helvetica", fontStyle(bold), size)
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))

	w := c.pdf.GetStringWidth(s)
	// Helvetica cap height is roughly 0.72 em; this puts ay=0.5 at the
	// visual center of the glyphs.
	baselineY := y + ay*size*0.72
	textX := x - ax*w

	if angle != 0 {
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(angle, x, y)
		c.pdf.Text(textX, baselineY, s)
		c.pdf.TransformEnd()
		return
	}
	c.pdf.Text(textX, baselineY, s)
}

// MeasureText returns the rendered size of s in points.
func (c *PDFCanvas) MeasureText(s string, size float64, bold bool) (float64, float64) {
	c.pdf.SetFont("Helvetica", fontStyle(bold), size)
	return c.pdf.GetStringWidth(s), size
}

func (c *PDFCanvas) tracePolygon(rings [][]XY) {
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		c.pdf.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.pdf.LineTo(p.X, p.Y)
		}
		c.pdf.ClosePath()
	}
}

func fontStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}
