package flow

import (
	"github.com/tsawler/inlay/locate"
	"github.com/tsawler/inlay/model"
)

// Placement reports what the writer did with one answer row.
// Lines + len(Job.Lines) always equals Total.
type Placement struct {
	Lines int // lines written inside the box
	Total int // total wrapped lines
	Job   *model.ContinuationJob
}

// Writer lays a single answer into the box under its caption keyword.
type Writer struct {
	Dev    Device
	Width  WidthFunc
	Config Config
}

// Write wraps the row's answer to the width available after the caption,
// writes what the fill policy allows at the match position, and returns a
// continuation job for any remainder (lines or images).
//
// The fill policy keeps in-document boxes compact: an answer wrapping to
// more than InBoxLineLimit lines, or any row carrying images, gets only its
// first line in-box and routes everything else to continuation pages.
func (w *Writer) Write(rec *model.PageRecord, m locate.Match, row model.AnswerRow) Placement {
	cfg := w.Config

	startX := m.X + m.Width + cfg.Gutter
	maxWidth := rec.Width - startX - cfg.RightMargin
	if maxWidth < 1 {
		maxWidth = 1
	}
	lineHeight := m.FontSize * cfg.LineSpacing

	lines := Wrap(row.Answer, maxWidth, m.FontSize, w.Width)

	bottom := EstimateBottom(rec.Index, m.Y, m.X, cfg)
	maxLines := int((m.Y - bottom) / lineHeight)
	if maxLines < 1 {
		maxLines = 1
	}

	written := 0
	if len(lines) > cfg.InBoxLineLimit || len(row.Images) > 0 {
		if len(lines) > 0 {
			written = 1
		}
	} else {
		written = len(lines)
		if written > maxLines {
			written = maxLines
		}
	}

	// First line continues the caption's own line; later lines restart at
	// the left margin.
	for i := 0; i < written; i++ {
		x := startX
		if i > 0 {
			x = cfg.LeftMargin
		}
		w.Dev.Text(rec.Handle, x, m.Y-float64(i)*lineHeight, m.FontSize, lines[i])
	}

	p := Placement{Lines: written, Total: len(lines)}

	rest := lines[written:]
	if len(rest) > 0 || len(row.Images) > 0 {
		p.Job = &model.ContinuationJob{
			Label:      row.Label,
			Lines:      append([]string(nil), rest...),
			Images:     row.Images,
			FontSize:   m.FontSize,
			LineHeight: lineHeight,
			SourcePage: rec.Handle,
			PageWidth:  rec.Width,
			PageHeight: rec.Height,
		}
	}
	return p
}
