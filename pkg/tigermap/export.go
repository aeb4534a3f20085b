package tigermap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Exporter writes rendered maps to disk as PNG and PDF.
type Exporter struct {
	// OutputDir is created if missing. Prior outputs with the same base
	// name are removed before writing, so a failed run never leaves a
	// stale file masquerading as current.
	OutputDir string
}

// NewExporter creates an exporter targeting dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{OutputDir: dir}
}

// Export renders content through both backends and writes
// <base>.png and <base>.pdf under OutputDir. It returns the written paths.
func (e *Exporter) Export(content *MapContent, style Style, base string) (pngPath, pdfPath string, err error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir %s: %w", e.OutputDir, err)
	}

	pngPath = filepath.Join(e.OutputDir, base+".png")
	pdfPath = filepath.Join(e.OutputDir, base+".pdf")
	for _, path := range []string{pngPath, pdfPath} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("remove stale output %s: %w", path, err)
		}
	}

	renderer := NewRenderer(style)

	raster, err := NewRasterCanvas(style)
	if err != nil {
		return "", "", err
	}
	renderer.Render(raster, content)
	if err := raster.WritePNG(pngPath); err != nil {
		return "", "", err
	}

	pdf, err := NewPDFCanvas(style)
	if err != nil {
		return "", "", err
	}
	renderer.Render(pdf, content)
	if err := pdf.WritePDF(pdfPath); err != nil {
		return "", "", err
	}

	return pngPath, pdfPath, nil
}
