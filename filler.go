package inlay

import (
	"fmt"

	"github.com/tsawler/inlay/answers"
	"github.com/tsawler/inlay/extract"
	"github.com/tsawler/inlay/flow"
	"github.com/tsawler/inlay/locate"
	"github.com/tsawler/inlay/model"
	"github.com/tsawler/inlay/render"
)

// Filler holds the configuration for one fill run. Configuration methods
// clone the Filler, so a configured Filler can be reused and branched.
type Filler struct {
	filename string
	rows     []model.AnswerRow
	rowsFile string
	options  fillOptions
}

// clone creates a deep copy of the Filler.
func (f *Filler) clone() *Filler {
	return &Filler{
		filename: f.filename,
		rows:     append([]model.AnswerRow(nil), f.rows...),
		rowsFile: f.rowsFile,
		options:  f.options.clone(),
	}
}

// Rows supplies answer rows directly, replacing any earlier row source.
func (f *Filler) Rows(rows ...model.AnswerRow) *Filler {
	c := f.clone()
	c.rows = append([]model.AnswerRow(nil), rows...)
	c.rowsFile = ""
	return c
}

// RowsFile supplies answer rows from a JSON or XLSX file, replacing any
// earlier row source. The file is read when WriteTo runs.
func (f *Filler) RowsFile(path string) *Filler {
	c := f.clone()
	c.rowsFile = path
	c.rows = nil
	return c
}

// WithSearchBounds overrides the bounds of the anchor search.
func (f *Filler) WithSearchBounds(b locate.SearchBounds) *Filler {
	c := f.clone()
	c.options.bounds = b
	return c
}

// WithLayout overrides the layout tunables.
func (f *Filler) WithLayout(cfg flow.Config) *Filler {
	c := f.clone()
	c.options.layout = cfg
	return c
}

// WriteTo is the terminal operation: it resolves every row's anchor, writes
// the answers, flows overflow onto continuation pages, and writes the result
// to outPath. Rows whose anchors cannot be found are skipped with a warning;
// the run only fails on structural errors.
func (f *Filler) WriteTo(outPath string) (Report, []Warning, error) {
	rows, err := f.resolveRows()
	if err != nil {
		return Report{}, nil, err
	}
	if len(rows) == 0 {
		return Report{}, nil, fmt.Errorf("no answer rows supplied")
	}

	idxs, err := extract.BuildIndexes(f.filename)
	if err != nil {
		return Report{}, nil, fmt.Errorf("indexing %s: %w", f.filename, err)
	}

	doc := model.NewDocument()
	for _, idx := range idxs {
		doc.AddPage(idx.Width, idx.Height, idx)
	}
	// Snapshot the source pages: match page indexes refer to this order, not
	// to the document after continuation pages are spliced in.
	source := append([]*model.PageRecord(nil), doc.Records()...)

	dev := render.New(doc, f.filename)
	writer := &flow.Writer{Dev: dev, Width: render.TextWidth, Config: f.options.layout}

	var report Report
	var warnings []Warning
	var jobs []*model.ContinuationJob

	for _, row := range rows {
		m, ok := locate.Resolve(idxs, row.Label, f.options.bounds)
		if !ok {
			report.Skipped++
			report.Unresolved = append(report.Unresolved, row.Label)
			warnings = append(warnings, Warning{
				Code:    WarnAnchorNotFound,
				Label:   row.Label,
				Message: "label or caption keyword not found",
			})
			continue
		}

		p := writer.Write(source[m.PageIndex], m, row)
		if p.Job != nil {
			jobs = append(jobs, p.Job)
		}
		report.Processed++
	}

	mgr := &flow.Manager{Doc: doc, Dev: dev, Config: f.options.layout}
	if err := mgr.Process(jobs); err != nil {
		return report, warnings, err
	}
	report.ContinuationPages = doc.Len() - len(source)

	for _, msg := range dev.Warnings() {
		warnings = append(warnings, Warning{Code: WarnImageSkipped, Message: msg})
	}

	if err := dev.Save(outPath); err != nil {
		return report, warnings, fmt.Errorf("saving %s: %w", outPath, err)
	}
	return report, warnings, nil
}

// resolveRows loads rows from the configured source and validates them.
func (f *Filler) resolveRows() ([]model.AnswerRow, error) {
	if f.rowsFile != "" {
		return answers.Load(f.rowsFile)
	}
	if err := answers.Validate(f.rows); err != nil {
		return nil, err
	}
	return f.rows, nil
}
