package model

import "fmt"

// PageHandle is a stable opaque identifier for a page. Handles survive page
// insertions; positional page numbers are derived from document order only
// when needed.
type PageHandle int

// PageRecord pairs everything known about one page: its drawable handle, its
// size, and its token index. A record owns all three facets so that an
// insertion can never leave them out of sync.
type PageRecord struct {
	Handle PageHandle
	Width  float64
	Height float64
	Index  *PageIndex

	// Continuation marks pages created by the engine rather than present in
	// the source document.
	Continuation bool

	// SourceLabel names the answer row a continuation page belongs to.
	SourceLabel string
}

// Document is the ordered sequence of pages. It is mutated in place by
// continuation-page insertion and is exclusively owned by the main flow.
type Document struct {
	records    []*PageRecord
	nextHandle PageHandle
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddPage appends a source page and returns its record.
func (d *Document) AddPage(width, height float64, idx *PageIndex) *PageRecord {
	rec := &PageRecord{
		Handle: d.nextHandle,
		Width:  width,
		Height: height,
		Index:  idx,
	}
	d.nextHandle++
	d.records = append(d.records, rec)
	return rec
}

// InsertAfter splices a new continuation page immediately after the page
// identified by h. The new page inherits the predecessor's dimensions and
// starts with an empty token index.
func (d *Document) InsertAfter(h PageHandle, sourceLabel string) (*PageRecord, error) {
	pos := d.position(h)
	if pos < 0 {
		return nil, fmt.Errorf("insert after: no page with handle %d", h)
	}
	prev := d.records[pos]
	rec := &PageRecord{
		Handle:       d.nextHandle,
		Width:        prev.Width,
		Height:       prev.Height,
		Index:        NewPageIndex(-1, prev.Width, prev.Height),
		Continuation: true,
		SourceLabel:  sourceLabel,
	}
	d.nextHandle++
	d.records = append(d.records, nil)
	copy(d.records[pos+2:], d.records[pos+1:])
	d.records[pos+1] = rec
	return rec, nil
}

// Records returns the pages in document order. The returned slice is the
// document's backing store; callers must not reorder it.
func (d *Document) Records() []*PageRecord {
	return d.records
}

// Record returns the page with the given handle, or nil.
func (d *Document) Record(h PageHandle) *PageRecord {
	pos := d.position(h)
	if pos < 0 {
		return nil
	}
	return d.records[pos]
}

// PageNumber returns the current 1-based page number for a handle. The
// second return is false if the handle is unknown.
func (d *Document) PageNumber(h PageHandle) (int, bool) {
	pos := d.position(h)
	if pos < 0 {
		return 0, false
	}
	return pos + 1, true
}

// Len returns the number of pages.
func (d *Document) Len() int {
	return len(d.records)
}

func (d *Document) position(h PageHandle) int {
	for i, rec := range d.records {
		if rec.Handle == h {
			return i
		}
	}
	return -1
}
