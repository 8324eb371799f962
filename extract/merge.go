package extract

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/inlay/model"
)

// wordGapFactor is the fraction of the font size beyond which a horizontal
// gap between fragments separates two words.
const wordGapFactor = 0.3

// fragment is a raw positioned text run as delivered by the extraction
// library, usually a single character.
type fragment struct {
	text     string
	x, y     float64
	width    float64
	fontSize float64
}

// mergeWords merges character-level fragments into word tokens. Fragments on
// the same visual line are joined while the gap between them stays below
// wordGapFactor of the font size; whitespace always separates words.
func mergeWords(frags []fragment) []model.Token {
	frags = splitSpaced(frags)
	sortFragments(frags)

	var tokens []model.Token
	var cur *model.Token
	var lastEnd float64

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Text) != "" {
			tokens = append(tokens, *cur)
		}
		cur = nil
	}

	for _, f := range frags {
		if strings.TrimSpace(f.text) == "" {
			flush()
			lastEnd = f.x + f.width
			continue
		}

		if cur == nil {
			cur = &model.Token{Text: f.text, X: f.x, Y: f.y, FontSize: f.fontSize, Width: f.width}
			lastEnd = f.x + f.width
			continue
		}

		fs := math.Max(cur.FontSize, f.fontSize)
		sameLine := math.Abs(f.y-cur.Y) <= fs*0.5
		gap := f.x - lastEnd

		if !sameLine || gap > fs*wordGapFactor {
			flush()
			cur = &model.Token{Text: f.text, X: f.x, Y: f.y, FontSize: f.fontSize, Width: f.width}
		} else {
			cur.Text += f.text
			cur.Width = f.x + f.width - cur.X
		}
		lastEnd = f.x + f.width
	}
	flush()

	return tokens
}

// splitSpaced breaks fragments containing internal whitespace into separate
// word fragments, distributing the width proportionally to rune count.
func splitSpaced(frags []fragment) []fragment {
	out := make([]fragment, 0, len(frags))
	for _, f := range frags {
		if !strings.ContainsAny(f.text, " \t") {
			out = append(out, f)
			continue
		}

		total := len([]rune(f.text))
		if total == 0 {
			continue
		}
		perRune := f.width / float64(total)

		x := f.x
		consumed := 0
		for _, word := range strings.Fields(f.text) {
			// Advance past whitespace preceding this word.
			off := runeIndex(f.text, word, consumed)
			x = f.x + perRune*float64(off)
			n := len([]rune(word))
			out = append(out, fragment{
				text:     word,
				x:        x,
				y:        f.y,
				width:    perRune * float64(n),
				fontSize: f.fontSize,
			})
			consumed = off + n
		}
	}
	return out
}

// runeIndex finds the rune offset of word within s at or after the rune
// offset from.
func runeIndex(s, word string, from int) int {
	runes := []rune(s)
	target := []rune(word)
	for i := from; i+len(target) <= len(runes); i++ {
		if string(runes[i:i+len(target)]) == word {
			return i
		}
	}
	return from
}

// sortFragments orders fragments by descending Y then ascending X, treating
// baselines within half a font size as the same line.
func sortFragments(frags []fragment) {
	sort.SliceStable(frags, func(i, j int) bool {
		a, b := frags[i], frags[j]
		tol := a.fontSize * 0.5
		if tol == 0 {
			tol = 1
		}
		dy := a.y - b.y
		if dy > tol {
			return true
		}
		if dy < -tol {
			return false
		}
		return a.x < b.x
	})
}
