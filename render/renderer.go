package render

import (
	"fmt"

	"github.com/tsawler/inlay/flow"
	"github.com/tsawler/inlay/model"
)

type textStamp struct {
	x, y     float64
	fontSize float64
	text     string
}

type imageStamp struct {
	x, y float64
	w, h float64 // display size in points
	natW float64 // natural pixel width, for the stamp scale factor
	data []byte
}

// Renderer buffers text and image stamps against page handles. Nothing
// touches the PDF until Save.
type Renderer struct {
	doc      *model.Document
	srcPath  string
	texts    map[model.PageHandle][]textStamp
	images   map[model.PageHandle][]imageStamp
	warnings []string
}

var _ flow.Device = (*Renderer)(nil)

// New creates a renderer over the document extracted from srcPath.
func New(doc *model.Document, srcPath string) *Renderer {
	return &Renderer{
		doc:     doc,
		srcPath: srcPath,
		texts:   make(map[model.PageHandle][]textStamp),
		images:  make(map[model.PageHandle][]imageStamp),
	}
}

// Text records a line of text at (x, y) on the given page.
func (r *Renderer) Text(page model.PageHandle, x, y, fontSize float64, text string) {
	r.texts[page] = append(r.texts[page], textStamp{x: x, y: y, fontSize: fontSize, text: text})
}

// Image records an image at (x, y) with the given display size. A failure to
// prepare the image is reported as a warning and returned, so the caller can
// skip the asset and move on.
func (r *Renderer) Image(page model.PageHandle, x, y, width, height float64, img model.ImageAsset) error {
	data, err := normalize(img)
	if err != nil {
		r.warnf("image skipped: %v", err)
		return err
	}
	natW, _, err := decodeSize(model.ImageAsset{Data: data, Format: img.Format})
	if err != nil {
		r.warnf("image skipped: %v", err)
		return err
	}
	r.images[page] = append(r.images[page], imageStamp{
		x: x, y: y, w: width, h: height, natW: natW, data: data,
	})
	return nil
}

// ImageSize returns the natural dimensions of an image asset in pixels,
// which the layout treats as points. Undecodable assets produce a warning.
func (r *Renderer) ImageSize(img model.ImageAsset) (float64, float64, error) {
	w, h, err := decodeSize(img)
	if err != nil {
		r.warnf("image skipped: %v", err)
		return 0, 0, err
	}
	return w, h, nil
}

// Warnings returns the non-fatal problems recorded while rendering.
func (r *Renderer) Warnings() []string {
	return r.warnings
}

func (r *Renderer) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
