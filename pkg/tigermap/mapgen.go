package tigermap

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// Config holds everything Generate needs: input paths, output location, the
// region to map, and the visual style.
type Config struct {
	// CountiesPath is the county polygon shapefile (.shp).
	CountiesPath string

	// HighwaysPath is the primary-roads polyline shapefile (.shp).
	HighwaysPath string

	// OutputDir receives the exported files; OutputBase is the filename
	// without extension.
	OutputDir  string
	OutputBase string

	Region RegionSpec
	Labels LabelPolicy
	Style  Style
	POI    PointOfInterest

	// Logger receives progress events. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the standard four-county print map configuration.
func DefaultConfig() Config {
	return Config{
		CountiesPath: filepath.Join("data", "shapefiles", "tl_2023_us_county.shp"),
		HighwaysPath: filepath.Join("data", "shapefiles", "tl_2023_us_primaryroads.shp"),
		OutputDir:    "output",
		OutputBase:   "us_masjid_map_final",
		Region:       DefaultRegionSpec(),
		Labels:       DefaultLabelPolicy(),
		Style:        DefaultStyle(),
		POI:          DefaultPointOfInterest(),
	}
}

// Result reports what Generate produced.
type Result struct {
	Counties []County
	Highways []Highway
	Labels   []Placement

	PNGPath string
	PDFPath string
}

// Generate runs the full pipeline: load both layers, filter to the region,
// select intersecting highways, place labels, and export PNG and PDF.
//
// Loading errors and write failures abort the run. An empty county selection
// does not: the export still produces a titled page, and the result records
// the empty selection.
func Generate(cfg Config) (*Result, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	loader := NewLoader()

	log.Info("loading county layer", "path", cfg.CountiesPath)
	counties, err := loader.LoadWithOptions(cfg.CountiesPath, LoadOptions{
		SkipInvalidGeometry: true,
		ValidateGeometry:    true,
		AttributeFilter:     []string{"NAME", "STATEFP"},
	})
	if err != nil {
		return nil, fmt.Errorf("load counties: %w", err)
	}
	log.Info("county layer loaded", "features", counties.FeatureCount())

	log.Info("loading highway layer", "path", cfg.HighwaysPath)
	highways, err := loader.LoadWithOptions(cfg.HighwaysPath, LoadOptions{
		SkipInvalidGeometry: true,
		ValidateGeometry:    true,
		AttributeFilter:     []string{"FULLNAME", "RTTYP"},
	})
	if err != nil {
		return nil, fmt.Errorf("load highways: %w", err)
	}
	log.Info("highway layer loaded", "features", highways.FeatureCount())

	selected := SelectCounties(counties, cfg.Region)
	log.Info("counties selected", "count", len(selected), "wanted", len(cfg.Region.Counties))
	if len(selected) < len(cfg.Region.Counties) {
		log.Warn("some counties missing from source", "found", countyNames(selected))
	}

	// Expanding an empty union would manufacture a small valid window at
	// the origin; keep it invalid so downstream stages degrade cleanly.
	extent := CountyUnionBounds(selected)
	if extent.IsValid() {
		extent = extent.Expand(cfg.Region.Buffer)
	}
	roads := SelectHighways(highways, extent)
	log.Info("highways selected", "count", len(roads))

	labels := PlaceLabels(roads, cfg.Labels)
	log.Info("labels placed", "count", len(labels))

	content := &MapContent{
		Extent:   extent,
		Counties: selected,
		Highways: roads,
		Labels:   labels,
		POI:      cfg.POI,
	}

	exporter := NewExporter(cfg.OutputDir)
	pngPath, pdfPath, err := exporter.Export(content, cfg.Style, cfg.OutputBase)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	log.Info("map exported", "png", pngPath, "pdf", pdfPath)

	return &Result{
		Counties: selected,
		Highways: roads,
		Labels:   labels,
		PNGPath:  pngPath,
		PDFPath:  pdfPath,
	}, nil
}

func countyNames(counties []County) []string {
	names := make([]string, len(counties))
	for i, c := range counties {
		names[i] = c.Name
	}
	return names
}
