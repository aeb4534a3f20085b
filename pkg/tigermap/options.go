package tigermap

// LoadOptions configures shapefile loading behavior.
type LoadOptions struct {
	// SkipInvalidGeometry: if true, records with unsupported or invalid
	// geometry are dropped instead of failing the load.
	// Default: false.
	SkipInvalidGeometry bool

	// ValidateGeometry: if true, every coordinate is checked against
	// geographic bounds (lat ±90, lon ±180).
	// Default: true.
	ValidateGeometry bool

	// AttributeFilter: if non-empty, only the named DBF columns are kept
	// on each feature. Loading the national county or primary-roads file
	// with a filter cuts memory noticeably since only a couple of columns
	// are ever read.
	AttributeFilter []string
}

// DefaultLoadOptions returns default options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		SkipInvalidGeometry: false,
		ValidateGeometry:    true,
		AttributeFilter:     nil,
	}
}
