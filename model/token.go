package model

import "sort"

// Token represents a positioned piece of existing page content. X and Y are
// the baseline origin in PDF coordinates; Width is the rendered width of the
// text. Tokens are immutable once extracted.
type Token struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Width    float64
}

// Bounds returns the approximate bounding box of the token, using the font
// size as the line height.
func (t Token) Bounds() BBox {
	return BBox{X: t.X, Y: t.Y, Width: t.Width, Height: t.FontSize}
}

// PageIndex holds one page's tokens in visual reading order: descending Y,
// then ascending X. One index exists per page; its lifetime is bounded to a
// single run.
type PageIndex struct {
	PageIndex int // 0-based position in the source document
	Width     float64
	Height    float64
	Tokens    []Token
}

// NewPageIndex creates an empty index for a page of the given dimensions.
func NewPageIndex(pageIndex int, width, height float64) *PageIndex {
	return &PageIndex{
		PageIndex: pageIndex,
		Width:     width,
		Height:    height,
	}
}

// SortReadingOrder sorts the tokens by descending Y, then ascending X.
// Tokens whose baselines are within half a font size of each other are
// treated as the same visual line.
func (p *PageIndex) SortReadingOrder() {
	sort.SliceStable(p.Tokens, func(i, j int) bool {
		a, b := p.Tokens[i], p.Tokens[j]
		tol := a.FontSize * 0.5
		if tol == 0 {
			tol = 1
		}
		dy := a.Y - b.Y
		if dy > tol {
			return true
		}
		if dy < -tol {
			return false
		}
		return a.X < b.X
	})
}

// Find returns the index of the first token whose text exactly equals s, or
// -1 if no such token exists.
func (p *PageIndex) Find(s string) int {
	for i, t := range p.Tokens {
		if t.Text == s {
			return i
		}
	}
	return -1
}
