package flow

import (
	"fmt"
	"sort"

	"github.com/tsawler/inlay/model"
)

// Manager flows continuation jobs onto freshly inserted pages.
//
// Jobs are processed grouped by source page, groups in ascending document
// order and jobs within a group in input (label) order, so continuation
// pages never reorder content relative to the original document.
type Manager struct {
	Doc    *model.Document
	Dev    Device
	Config Config
}

// Process consumes the jobs. Each job is drained completely: a job is done
// only when its lines and images are both exhausted.
func (m *Manager) Process(jobs []*model.ContinuationJob) error {
	if len(jobs) == 0 {
		return nil
	}

	groups := make(map[model.PageHandle][]*model.ContinuationJob)
	for _, j := range jobs {
		groups[j.SourcePage] = append(groups[j.SourcePage], j)
	}

	order := make([]model.PageHandle, 0, len(groups))
	for h := range groups {
		order = append(order, h)
	}
	sort.Slice(order, func(i, j int) bool {
		pi, _ := m.Doc.PageNumber(order[i])
		pj, _ := m.Doc.PageNumber(order[j])
		return pi < pj
	})

	for _, h := range order {
		if err := m.processGroup(h, groups[h]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) processGroup(src model.PageHandle, jobs []*model.ContinuationJob) error {
	cfg := m.Config

	last := src // insertion point: source page, then the latest continuation page
	var cur *model.PageRecord
	var y float64
	fresh := false

	openPage := func(job *model.ContinuationJob) error {
		rec, err := m.Doc.InsertAfter(last, job.Label)
		if err != nil {
			return fmt.Errorf("opening continuation page for %s: %w", job.Label, err)
		}
		last = rec.Handle
		cur = rec
		y = job.PageHeight - cfg.TopMargin
		m.Dev.Text(cur.Handle, cfg.LeftMargin, y, job.FontSize,
			fmt.Sprintf("(Continuation of %s)", job.Label))
		y -= job.LineHeight * 2
		fresh = true
		return nil
	}

	for _, job := range jobs {
		lines := job.Lines
		images := job.Images

		for len(lines) > 0 || len(images) > 0 {
			if cur == nil || y < cfg.OpenThreshold {
				if err := openPage(job); err != nil {
					return err
				}
			}

			// Reserve extra room at the bottom while an image is pending.
			floor := cfg.BottomMargin
			if len(images) > 0 {
				floor = cfg.ImageReserve
			}

			progressed := false
			// An untouched page takes at least one line regardless of the
			// floor, so pages too short for the reserve still drain the job.
			for len(lines) > 0 && (y >= floor || fresh) {
				m.Dev.Text(cur.Handle, cfg.LeftMargin, y, job.FontSize, lines[0])
				lines = lines[1:]
				y -= job.LineHeight
				progressed = true
				fresh = false
			}

			for len(lines) == 0 && len(images) > 0 {
				img := images[0]
				w, h, err := m.Dev.ImageSize(img)
				if err != nil {
					// The device has recorded the skip.
					images = images[1:]
					progressed = true
					continue
				}

				scale := 1.0
				if w > cfg.MaxImageWidth {
					scale = cfg.MaxImageWidth / w
				}
				if h*scale > cfg.MaxImageHeight {
					scale = cfg.MaxImageHeight / h
				}
				dw, dh := w*scale, h*scale

				// Defer to the next page unless this one is untouched, in
				// which case the image is placed regardless so progress is
				// guaranteed.
				if y-dh < cfg.BottomMargin && !fresh {
					break
				}

				if err := m.Dev.Image(cur.Handle, cfg.LeftMargin, y-dh, dw, dh, img); err != nil {
					images = images[1:]
					progressed = true
					continue
				}
				images = images[1:]
				y -= dh + cfg.ImageGap
				progressed = true
				fresh = false
			}

			if !progressed {
				// Nothing fit: force a fresh page on the next cycle.
				y = 0
			}
		}
	}
	return nil
}
