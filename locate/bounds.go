package locate

// SearchBounds caps the cross-page keyword search. The bounds exist to keep
// worst-case search cost proportional to the window, not to the document.
type SearchBounds struct {
	// MaxLookaheadPages is the number of pages after the label page that may
	// be searched for a keyword.
	MaxLookaheadPages int

	// MaxPageTokens caps how many tokens of each page are scanned.
	MaxPageTokens int

	// PageDistanceWeight scores a candidate as
	// pageDistance*PageDistanceWeight + tokenOffset. It must exceed
	// MaxPageTokens so any same-page match beats any cross-page match.
	PageDistanceWeight int

	// SamePageMaxOffset is the largest token distance on the label's own page
	// that is accepted without consulting later pages.
	SamePageMaxOffset int
}

// DefaultSearchBounds returns the standard search window.
func DefaultSearchBounds() SearchBounds {
	return SearchBounds{
		MaxLookaheadPages:  10,
		MaxPageTokens:      2000,
		PageDistanceWeight: 10000,
		SamePageMaxOffset:  30,
	}
}
