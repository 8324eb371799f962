package render

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Save writes the final PDF to outPath: it inserts a blank page for every
// continuation page in the document, then stamps all buffered text and
// images onto their pages. Page numbers are resolved from document order at
// this point and never earlier.
func (r *Renderer) Save(outPath string) error {
	work, err := os.ReadFile(r.srcPath)
	if err != nil {
		return fmt.Errorf("reading source pdf: %w", err)
	}

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	// Continuation pages are inserted in document order, so every record
	// before the current one is already present in the working file and the
	// record's slice position is its final page number.
	for i, rec := range r.doc.Records() {
		if !rec.Continuation {
			continue
		}
		if i == 0 {
			return fmt.Errorf("continuation page %q has no predecessor", rec.SourceLabel)
		}
		var buf bytes.Buffer
		pages := []string{strconv.Itoa(i)} // insert after the predecessor
		if err := api.InsertPages(bytes.NewReader(work), &buf, pages, false, nil, conf); err != nil {
			return fmt.Errorf("inserting continuation page for %s: %w", rec.SourceLabel, err)
		}
		work = buf.Bytes()
	}

	stamps, err := r.buildStamps()
	if err != nil {
		return err
	}
	if len(stamps) > 0 {
		var buf bytes.Buffer
		if err := api.AddWatermarksSliceMap(bytes.NewReader(work), &buf, stamps, conf); err != nil {
			return fmt.Errorf("stamping content: %w", err)
		}
		work = buf.Bytes()
	}

	if err := os.WriteFile(outPath, work, 0o644); err != nil {
		return fmt.Errorf("writing output pdf: %w", err)
	}
	return nil
}

// buildStamps resolves page handles to 1-based page numbers and converts the
// buffered stamps to pdfcpu watermarks.
func (r *Renderer) buildStamps() (map[int][]*pdfmodel.Watermark, error) {
	stamps := make(map[int][]*pdfmodel.Watermark)

	for i, rec := range r.doc.Records() {
		pageNr := i + 1

		for _, s := range r.texts[rec.Handle] {
			desc := fmt.Sprintf("fontname:%s, points:%d, pos:bl, off:%.2f %.2f, scale:1 abs, rot:0, color:#000000",
				stampFont, stampFontSize(s.fontSize), s.x, s.y)
			wm, err := api.TextWatermark(s.text, desc, true, false, types.POINTS)
			if err != nil {
				return nil, fmt.Errorf("building text stamp on page %d: %w", pageNr, err)
			}
			stamps[pageNr] = append(stamps[pageNr], wm)
		}

		for _, s := range r.images[rec.Handle] {
			scale := 1.0
			if s.natW > 0 {
				scale = s.w / s.natW
			}
			desc := fmt.Sprintf("pos:bl, off:%.2f %.2f, scale:%.4f abs, rot:0", s.x, s.y, scale)
			wm, err := api.ImageWatermarkForReader(bytes.NewReader(s.data), desc, true, false, types.POINTS)
			if err != nil {
				return nil, fmt.Errorf("building image stamp on page %d: %w", pageNr, err)
			}
			stamps[pageNr] = append(stamps[pageNr], wm)
		}
	}
	return stamps, nil
}
