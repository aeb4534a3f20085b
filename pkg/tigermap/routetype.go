package tigermap

// RouteType classifies a road record by its TIGER/Line RTTYP code.
//
// The MAF/TIGER feature class documentation defines six codes; the two that
// matter for labeling are I (Interstate) and U (US route).
type RouteType int

const (
	// RouteUnknown indicates a record with no usable RTTYP code.
	RouteUnknown RouteType = iota

	// RouteInterstate - RTTYP "I", e.g. "I- 10".
	RouteInterstate

	// RouteUS - RTTYP "U", e.g. "US Hwy 101".
	RouteUS

	// RouteState - RTTYP "S", e.g. "State Rte 57".
	RouteState

	// RouteCounty - RTTYP "C", county routes and, by the fallback rule,
	// every code this package does not classify (M = common name,
	// O = other).
	RouteCounty
)

// RouteTypeFromCode converts a TIGER RTTYP code into a RouteType.
//
// Codes outside I/U/S/C map to RouteCounty: they are drawn in the same
// county-grade gray and never labeled. An empty code maps to RouteUnknown.
func RouteTypeFromCode(code string) RouteType {
	switch code {
	case "I":
		return RouteInterstate
	case "U":
		return RouteUS
	case "S":
		return RouteState
	case "C":
		return RouteCounty
	case "":
		return RouteUnknown
	default:
		return RouteCounty
	}
}

// String returns the RTTYP code for the route type.
func (rt RouteType) String() string {
	switch rt {
	case RouteInterstate:
		return "I"
	case RouteUS:
		return "U"
	case RouteState:
		return "S"
	case RouteCounty:
		return "C"
	default:
		return "?"
	}
}

// Label returns the human-readable name of the route type, as shown in the
// map legend.
func (rt RouteType) Label() string {
	switch rt {
	case RouteInterstate:
		return "Interstate"
	case RouteUS:
		return "US Route"
	case RouteState:
		return "State Route"
	case RouteCounty:
		return "County Route"
	default:
		return "Unknown"
	}
}

// IsMajor reports whether the route type qualifies for labeling.
// Only Interstates and US routes are labeled, which keeps the label count
// low enough to stay readable at print size.
func (rt RouteType) IsMajor() bool {
	return rt == RouteInterstate || rt == RouteUS
}
