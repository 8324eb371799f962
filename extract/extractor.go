package extract

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/inlay/model"
)

// US Letter, used when a page carries no resolvable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// BuildIndexes opens the PDF at path and returns one PageIndex per page, in
// document order, with tokens merged into words and sorted into reading
// order.
func BuildIndexes(path string) ([]*model.PageIndex, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]*model.PageIndex, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		idx := model.NewPageIndex(i-1, defaultPageWidth, defaultPageHeight)
		if page.V.IsNull() {
			pages = append(pages, idx)
			continue
		}

		idx.Width, idx.Height = pageSize(page)

		content := page.Content()
		frags := make([]fragment, 0, len(content.Text))
		for _, t := range content.Text {
			frags = append(frags, fragment{
				text:     norm.NFKC.String(t.S),
				x:        t.X,
				y:        t.Y,
				width:    t.W,
				fontSize: t.FontSize,
			})
		}

		idx.Tokens = mergeWords(frags)
		idx.SortReadingOrder()
		pages = append(pages, idx)
	}

	return pages, nil
}

// pageSize resolves the page dimensions from the MediaBox, walking up the
// page tree since the entry is inheritable.
func pageSize(p pdflib.Page) (float64, float64) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if mb.Len() != 4 {
			continue
		}
		x0, y0 := mb.Index(0).Float64(), mb.Index(1).Float64()
		x1, y1 := mb.Index(2).Float64(), mb.Index(3).Float64()
		if x1 > x0 && y1 > y0 {
			return x1 - x0, y1 - y0
		}
	}
	return defaultPageWidth, defaultPageHeight
}
