package flow

import (
	"errors"

	"github.com/tsawler/inlay/model"
)

// fixedWidth measures text at 0.6×fontSize per character, enough for
// deterministic wrapping without real font metrics.
func fixedWidth(s string, fontSize float64) float64 {
	return float64(len(s)) * fontSize * 0.6
}

type deviceCall struct {
	kind string // "text" or "image"
	page model.PageHandle
	x, y float64
	w, h float64
	size float64
	text string
}

// fakeDevice records drawing calls and serves configurable image sizes.
type fakeDevice struct {
	calls   []deviceCall
	imgW    float64
	imgH    float64
	sizeErr error
	skipped int
}

func (d *fakeDevice) Text(page model.PageHandle, x, y, fontSize float64, text string) {
	d.calls = append(d.calls, deviceCall{kind: "text", page: page, x: x, y: y, size: fontSize, text: text})
}

func (d *fakeDevice) Image(page model.PageHandle, x, y, width, height float64, img model.ImageAsset) error {
	d.calls = append(d.calls, deviceCall{kind: "image", page: page, x: x, y: y, w: width, h: height})
	return nil
}

func (d *fakeDevice) ImageSize(img model.ImageAsset) (float64, float64, error) {
	if d.sizeErr != nil {
		d.skipped++
		return 0, 0, d.sizeErr
	}
	return d.imgW, d.imgH, nil
}

func (d *fakeDevice) textsOn(page model.PageHandle) []string {
	var out []string
	for _, c := range d.calls {
		if c.kind == "text" && c.page == page {
			out = append(out, c.text)
		}
	}
	return out
}

var errUnsupported = errors.New("unsupported image format")
