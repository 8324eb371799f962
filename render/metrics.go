package render

import (
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/font"
)

// stampFont is the core font used for all written text. Core fonts need no
// embedding and their metrics ship with pdfcpu.
const stampFont = "Helvetica"

// TextWidth returns the rendered width of s at the given font size, in
// points. It satisfies the flow package's width function contract.
func TextWidth(s string, fontSize float64) float64 {
	return font.TextWidth(s, stampFont, stampFontSize(fontSize))
}

// stampFontSize maps an extracted font size to the whole-point size used for
// metrics and stamping. Extracted sizes are often fractional (9.96 for a
// nominal 10pt face); rounding keeps measurement and stamping on the nearest
// real size.
func stampFontSize(fontSize float64) int {
	return int(math.Round(fontSize))
}
