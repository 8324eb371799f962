package flow

import "strings"

// Wrap greedily word-wraps text to maxWidth. A word wider than maxWidth on
// its own still gets its own line; there is no hyphenation. Rejoining the
// returned lines with single spaces reproduces the input with whitespace
// runs collapsed.
func Wrap(text string, maxWidth, fontSize float64, width WidthFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 4)
	cur := words[0]
	for _, w := range words[1:] {
		candidate := cur + " " + w
		if width(candidate, fontSize) <= maxWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}
