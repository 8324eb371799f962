package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/inlay/model"
)

// maxRasterWidth caps the pixel width of embedded images. Wider rasters are
// downscaled before embedding so oversized screenshots do not bloat the
// output file.
const maxRasterWidth = 2048

// decodeSize returns the natural pixel dimensions of an image asset. Only
// PNG and JPEG are supported; anything else is an error.
func decodeSize(img model.ImageAsset) (float64, float64, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image: %w", err)
	}
	if format != "png" && format != "jpeg" {
		return 0, 0, fmt.Errorf("unsupported image format %q", format)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// normalize returns image bytes ready for embedding. Images within the
// raster cap pass through untouched; wider ones are downscaled and
// re-encoded as PNG.
func normalize(img model.ImageAsset) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if cfg.Width <= maxRasterWidth {
		return img.Data, nil
	}

	src, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	scale := float64(maxRasterWidth) / float64(cfg.Width)
	dst := image.NewRGBA(image.Rect(0, 0, maxRasterWidth, int(float64(cfg.Height)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("re-encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
