package tigermap

import (
	"testing"
)

// TestParseHexColor tests hex color parsing
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#FF0000", Color{R: 255}, false},
		{"#228B22", Color{R: 0x22, G: 0x8B, B: 0x22}, false},
		{"#ffffff", Color{R: 255, G: 255, B: 255}, false},
		{"FF0000", Color{}, true},
		{"#FF00", Color{}, true},
		{"#GGGGGG", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected wantErr=%v, got err=%v", tt.wantErr, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestDefaultStyle tests the fixed print configuration
func TestDefaultStyle(t *testing.T) {
	style := DefaultStyle()

	if style.WidthInches != 24 || style.HeightInches != 24 {
		t.Errorf("Expected 24x24 inches, got %vx%v", style.WidthInches, style.HeightInches)
	}
	if style.DPI != 300 {
		t.Errorf("Expected 300 DPI, got %d", style.DPI)
	}
	if style.pageWidthPt() != 1728 {
		t.Errorf("Expected page width 1728pt, got %v", style.pageWidthPt())
	}

	for _, name := range []string{"Los Angeles", "Orange", "Riverside", "San Bernardino"} {
		if _, ok := style.CountyColors[name]; !ok {
			t.Errorf("Expected county color for %s", name)
		}
	}
}

// TestStyleColorFallbacks tests fallback colors for unmapped names and types
func TestStyleColorFallbacks(t *testing.T) {
	style := DefaultStyle()

	if got := style.countyColor("Kern"); got != style.CountyFallback {
		t.Errorf("Expected county fallback, got %v", got)
	}
	if got := style.countyColor("Orange"); got == style.CountyFallback {
		t.Error("Expected mapped county color, got fallback")
	}

	if got := style.highwayColor(RouteUnknown); got != style.HighwayColors[RouteCounty] {
		t.Errorf("Expected county-grade color for unknown routes, got %v", got)
	}
	if got := style.highwayColor(RouteInterstate); got != mustHex("#FF0000") {
		t.Errorf("Expected red interstates, got %v", got)
	}
}
