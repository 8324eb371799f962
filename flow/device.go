package flow

import "github.com/tsawler/inlay/model"

// Device is the drawing surface the flow writer and continuation manager
// emit to. Implementations record or perform drawing; they are also
// responsible for noting skipped images so non-fatal decode failures degrade
// to warnings rather than errors.
type Device interface {
	// Text draws a single line at the given baseline origin.
	Text(page model.PageHandle, x, y, fontSize float64, text string)

	// Image draws an image with its bottom-left corner at (x, y), scaled to
	// width×height points.
	Image(page model.PageHandle, x, y, width, height float64, img model.ImageAsset) error

	// ImageSize returns the natural size of an image in points (pixels at
	// 72dpi). An error marks the image undecodable or unsupported; callers
	// skip it.
	ImageSize(img model.ImageAsset) (width, height float64, err error)
}

// WidthFunc measures the rendered width of text at a font size.
type WidthFunc func(text string, fontSize float64) float64
