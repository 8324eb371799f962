package locate

import (
	"strings"

	"github.com/tsawler/inlay/model"
)

// Match is the result of resolving a label to a caption keyword position.
// PageIndex is the page carrying the keyword; LabelPageIndex is the page
// carrying the label. The two differ for cross-page matches.
type Match struct {
	Label          string
	PageIndex      int
	X              float64
	Y              float64
	Width          float64
	FontSize       float64
	Keyword        string
	LabelPageIndex int
}

// CrossPage reports whether the keyword was found on a later page than the
// label.
func (m Match) CrossPage() bool {
	return m.PageIndex != m.LabelPageIndex
}

// keywordsFor returns the accepted caption keywords for a label, in
// preference order. Either keyword qualifies; the nearest token wins.
func keywordsFor(label string) []string {
	if strings.HasPrefix(label, "R") {
		return []string{"compliancy", "answer"}
	}
	return []string{"answer"}
}

// Resolve scans the pages for a token exactly equal to label and returns the
// nearest qualifying caption keyword token. Documents are assumed not to
// repeat a label, so the search stops at the first page containing it. The
// second return is false when no label token exists, or when the label has no
// keyword within the search window.
func Resolve(pages []*model.PageIndex, label string, b SearchBounds) (Match, bool) {
	keywords := keywordsFor(label)

	for pi, page := range pages {
		li := page.Find(label)
		if li < 0 {
			continue
		}

		var bestMatch Match
		bestScore := 0
		found := false

		// Nearest keyword after the label on its own page. A close match is
		// accepted outright; a distant one must compete with the lookahead
		// window, where the page-distance weight keeps it preferred over any
		// cross-page candidate.
		if off, tok, ok := scanForward(page.Tokens[li+1:], keywords, b.MaxPageTokens); ok {
			if off <= b.SamePageMaxOffset {
				return matchFor(label, pi, pi, tok), true
			}
			bestMatch = matchFor(label, pi, pi, tok)
			bestScore = off
			found = true
		}

		for d := 1; d <= b.MaxLookaheadPages && pi+d < len(pages); d++ {
			off, tok, ok := scanForward(pages[pi+d].Tokens, keywords, b.MaxPageTokens)
			if !ok {
				continue
			}
			score := d*b.PageDistanceWeight + off
			if !found || score < bestScore {
				bestMatch = matchFor(label, pi, pi+d, tok)
				found = true
			}
			// Any later page scores strictly worse.
			break
		}

		return bestMatch, found
	}

	return Match{}, false
}

// scanForward returns the offset and token of the first keyword match within
// the first limit tokens.
func scanForward(tokens []model.Token, keywords []string, limit int) (int, model.Token, bool) {
	for i, tok := range tokens {
		if i >= limit {
			break
		}
		lower := strings.ToLower(tok.Text)
		for _, kw := range keywords {
			if strings.HasPrefix(lower, kw) {
				return i, tok, true
			}
		}
	}
	return 0, model.Token{}, false
}

func matchFor(label string, labelPage, keywordPage int, tok model.Token) Match {
	return Match{
		Label:          label,
		PageIndex:      keywordPage,
		X:              tok.X,
		Y:              tok.Y,
		Width:          tok.Width,
		FontSize:       tok.FontSize,
		Keyword:        tok.Text,
		LabelPageIndex: labelPage,
	}
}
