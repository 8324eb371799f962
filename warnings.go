package inlay

import (
	"fmt"
	"strings"
)

// WarningCode classifies non-fatal problems encountered during a fill run.
type WarningCode string

const (
	// WarnAnchorNotFound means a row's label, or a caption keyword near it,
	// was not found in the document. The row is skipped.
	WarnAnchorNotFound WarningCode = "anchor_not_found"

	// WarnImageSkipped means an image asset could not be decoded or embedded
	// and was left out of the output.
	WarnImageSkipped WarningCode = "image_skipped"
)

// Warning describes a non-fatal issue. A run that produces warnings still
// writes an output file.
type Warning struct {
	Code    WarningCode
	Label   string // the answer row involved, if any
	Message string
}

func (w Warning) String() string {
	if w.Label != "" {
		return fmt.Sprintf("%s [%s]: %s", w.Code, w.Label, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
