package export

import (
	"strings"
	"testing"
)

func TestPhaseSVG(t *testing.T) {
	prey := []float64{50, 100, 150, 100, 50}
	predator := []float64{20, 30, 20, 10, 20}

	svg := PhaseSVG(prey, predator, 40, 12, 4.0)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("malformed SVG document")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected at least one plotted dot")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if CanvasToSVG(nil, 4.0) != "" {
		t.Error("expected empty string for nil canvas")
	}
}
