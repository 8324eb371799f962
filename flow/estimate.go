package flow

import (
	"math"

	"github.com/tsawler/inlay/model"
)

// EstimateBottom computes the lower bound of the writable box under a
// caption keyword at (keywordX, keywordY). It scans the page for tokens
// below the keyword baseline whose bounds overlap the keyword's column or
// the left-aligned band, and bounds the box just above the highest of them.
// Without such a token the box falls back to a fixed height. The result is
// never closer to the keyword than MinBoxHeight.
func EstimateBottom(page *model.PageIndex, keywordY, keywordX float64, cfg Config) float64 {
	below := keywordY - cfg.Epsilon
	column := model.NewBBox(keywordX-cfg.ColumnTolerance, 0, 2*cfg.ColumnTolerance, below)
	leftBand := model.NewBBox(0, 0, cfg.LeftMargin+cfg.ColumnTolerance, below)

	highest := math.Inf(-1)
	found := false

	for _, tok := range page.Tokens {
		if tok.Y >= below {
			continue
		}
		box := tok.Bounds()
		if !box.Intersects(column) && !box.Intersects(leftBand) {
			continue
		}
		if tok.Y > highest {
			highest = tok.Y
			found = true
		}
	}

	var bottom float64
	if found {
		bottom = highest + cfg.Clearance
	} else {
		bottom = keywordY - cfg.FallbackBoxHeight
		if bottom < cfg.BottomMargin {
			bottom = cfg.BottomMargin
		}
	}

	if keywordY-bottom < cfg.MinBoxHeight {
		bottom = keywordY - cfg.MinBoxHeight
	}
	return bottom
}
