package inlay

import (
	"github.com/tsawler/inlay/flow"
	"github.com/tsawler/inlay/locate"
)

// fillOptions holds the tunables for a fill run.
type fillOptions struct {
	layout flow.Config
	bounds locate.SearchBounds
}

// defaultOptions returns the standard fill options.
func defaultOptions() fillOptions {
	return fillOptions{
		layout: flow.DefaultConfig(),
		bounds: locate.DefaultSearchBounds(),
	}
}

// clone creates a copy of fillOptions. Both members are plain value structs,
// so a shallow copy is a deep copy.
func (o fillOptions) clone() fillOptions {
	return o
}
