package tigermap

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// RasterCanvas draws onto an in-memory RGBA image at a fixed DPI and
// exports it as PNG.
type RasterCanvas struct {
	ctx *gg.Context

	// k converts typographic points to device pixels (DPI / 72).
	k float64

	widthPt  float64
	heightPt float64

	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewRasterCanvas creates a raster canvas sized per the style's page
// dimensions and DPI, filled with the background color.
func NewRasterCanvas(style Style) (*RasterCanvas, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	pxW := int(style.WidthInches * float64(style.DPI))
	pxH := int(style.HeightInches * float64(style.DPI))
	ctx := gg.NewContext(pxW, pxH)

	c := &RasterCanvas{
		ctx:      ctx,
		k:        float64(style.DPI) / 72,
		widthPt:  style.pageWidthPt(),
		heightPt: style.pageHeightPt(),
		regular:  regular,
		bold:     bold,
		faces:    make(map[faceKey]font.Face),
	}

	bg := style.Background
	ctx.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
	ctx.Clear()
	return c, nil
}

// Size returns the canvas dimensions in points.
func (c *RasterCanvas) Size() (float64, float64) {
	return c.widthPt, c.heightPt
}

// Image returns the rendered image.
func (c *RasterCanvas) Image() image.Image {
	return c.ctx.Image()
}

// WritePNG writes the canvas to a PNG file.
func (c *RasterCanvas) WritePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}

// FillPolygon fills rings with the even-odd rule.
func (c *RasterCanvas) FillPolygon(rings [][]XY, fill Color, alpha float64) {
	if len(rings) == 0 {
		return
	}
	c.tracePolygon(rings)
	c.ctx.SetFillRule(gg.FillRuleEvenOdd)
	c.setColor(fill, alpha)
	c.ctx.Fill()
}

// StrokePolygon strokes the outline of every ring.
func (c *RasterCanvas) StrokePolygon(rings [][]XY, stroke Color, width, alpha float64) {
	if len(rings) == 0 {
		return
	}
	c.tracePolygon(rings)
	c.setColor(stroke, alpha)
	c.ctx.SetLineWidth(width * c.k)
	c.ctx.Stroke()
}

// Polyline strokes an open path.
func (c *RasterCanvas) Polyline(pts []XY, stroke Color, width, alpha float64) {
	if len(pts) < 2 {
		return
	}
	c.ctx.NewSubPath()
	c.ctx.MoveTo(pts[0].X*c.k, pts[0].Y*c.k)
	for _, p := range pts[1:] {
		c.ctx.LineTo(p.X*c.k, p.Y*c.k)
	}
	c.setColor(stroke, alpha)
	c.ctx.SetLineWidth(width * c.k)
	c.ctx.Stroke()
}

// RoundedRect draws a filled, outlined rounded rectangle.
func (c *RasterCanvas) RoundedRect(x, y, w, h, radius float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64) {
	c.ctx.DrawRoundedRectangle(x*c.k, y*c.k, w*c.k, h*c.k, radius*c.k)
	c.setColor(fill, fillAlpha)
	c.ctx.FillPreserve()
	c.setColor(stroke, 1)
	c.ctx.SetLineWidth(strokeWidth * c.k)
	c.ctx.Stroke()
}

// LabelBox draws a rounded rectangle centered at (cx, cy), rotated about
// its center.
func (c *RasterCanvas) LabelBox(cx, cy, w, h, radius, angle float64, fill Color, fillAlpha float64, stroke Color, strokeWidth float64) {
	px, py := cx*c.k, cy*c.k
	c.ctx.Push()
	if angle != 0 {
		c.ctx.RotateAbout(gg.Radians(-angle), px, py)
	}
	c.ctx.DrawRoundedRectangle(px-w*c.k/2, py-h*c.k/2, w*c.k, h*c.k, radius*c.k)
	c.setColor(fill, fillAlpha)
	c.ctx.FillPreserve()
	c.setColor(stroke, 1)
	c.ctx.SetLineWidth(strokeWidth * c.k)
	c.ctx.Stroke()
	c.ctx.Pop()
}

// Text draws a single line of anchored, optionally rotated text.
func (c *RasterCanvas) Text(s string, x, y, size float64, bold bool, col Color, angle, ax, ay float64) {
	c.ctx.SetFontFace(c.face(size, bold))
	c.setColor(col, 1)

	px, py := x*c.k, y*c.k
	if angle != 0 {
		c.ctx.Push()
		// gg rotation is clockwise in image coordinates; the canvas
		// contract is counter-clockwise as displayed.
		c.ctx.RotateAbout(gg.Radians(-angle), px, py)
		c.ctx.DrawStringAnchored(s, px, py, ax, ay)
		c.ctx.Pop()
		return
	}
	c.ctx.DrawStringAnchored(s, px, py, ax, ay)
}

// MeasureText returns the rendered size of s in points.
func (c *RasterCanvas) MeasureText(s string, size float64, bold bool) (float64, float64) {
	c.ctx.SetFontFace(c.face(size, bold))
	w, h := c.ctx.MeasureString(s)
	return w / c.k, h / c.k
}

func (c *RasterCanvas) tracePolygon(rings [][]XY) {
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		c.ctx.NewSubPath()
		c.ctx.MoveTo(ring[0].X*c.k, ring[0].Y*c.k)
		for _, p := range ring[1:] {
			c.ctx.LineTo(p.X*c.k, p.Y*c.k)
		}
		c.ctx.ClosePath()
	}
}

func (c *RasterCanvas) setColor(col Color, alpha float64) {
	c.ctx.SetRGBA255(int(col.R), int(col.G), int(col.B), int(alpha*255+0.5))
}

// face returns a cached font face for the given size, scaled to device
// pixels.
func (c *RasterCanvas) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src := c.regular
	if bold {
		src = c.bold
	}
	f := truetype.NewFace(src, &truetype.Options{Size: size * c.k})
	c.faces[key] = f
	return f
}
