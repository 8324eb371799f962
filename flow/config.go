package flow

// Config holds the layout tunables, all in PDF points unless noted.
type Config struct {
	// Gutter separates the caption keyword from the first answer line.
	Gutter float64

	// RightMargin bounds the wrap width on the right edge of the page.
	RightMargin float64

	// LeftMargin is where wrapped lines after the first, and all
	// continuation-page content, begin.
	LeftMargin float64

	// LineSpacing is the line height as a multiple of the font size.
	LineSpacing float64

	// InBoxLineLimit is the largest wrapped-line count still written fully
	// in-document; longer answers keep only their first line in the box and
	// defer the rest to continuation pages.
	InBoxLineLimit int

	// Epsilon is the minimum baseline drop for a token to count as "below"
	// the keyword.
	Epsilon float64

	// ColumnTolerance is the horizontal band within which a token is
	// considered aligned with the keyword column or the left margin.
	ColumnTolerance float64

	// Clearance is kept between the answer box and the content below it.
	Clearance float64

	// FallbackBoxHeight sizes the box when no content exists below the
	// keyword.
	FallbackBoxHeight float64

	// MinBoxHeight is the smallest usable box; a tighter natural estimate is
	// forced up to it.
	MinBoxHeight float64

	// TopMargin and BottomMargin frame continuation pages.
	TopMargin    float64
	BottomMargin float64

	// OpenThreshold is the remaining vertical space below which a new
	// continuation page is opened instead of writing on.
	OpenThreshold float64

	// ImageReserve replaces BottomMargin while an image is still pending, so
	// room for the image is guaranteed.
	ImageReserve float64

	// MaxImageWidth and MaxImageHeight cap embedded image display size;
	// aspect ratio is preserved.
	MaxImageWidth  float64
	MaxImageHeight float64

	// ImageGap follows each placed image.
	ImageGap float64
}

// DefaultConfig returns the standard layout tunables.
func DefaultConfig() Config {
	return Config{
		Gutter:            6,
		RightMargin:       40,
		LeftMargin:        60,
		LineSpacing:       1.2,
		InBoxLineLimit:    2,
		Epsilon:           2,
		ColumnTolerance:   20,
		Clearance:         4,
		FallbackBoxHeight: 200,
		MinBoxHeight:      14,
		TopMargin:         50,
		BottomMargin:      50,
		OpenThreshold:     100,
		ImageReserve:      170,
		MaxImageWidth:     400,
		MaxImageHeight:    300,
		ImageGap:          10,
	}
}
