// Package inlay provides a fluent API for writing answer text into labeled
// answer boxes of a PDF form, with overflow flowed onto inserted
// continuation pages.
//
// Basic usage:
//
//	report, warnings, err := inlay.Open("questionnaire.pdf").
//	    RowsFile("answers.xlsx").
//	    WriteTo("questionnaire-answered.pdf")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", inlay.FormatWarnings(warnings))
//	}
//
// Rows can also be supplied directly:
//
//	report, _, err := inlay.Open("questionnaire.pdf").
//	    Rows(
//	        model.AnswerRow{Label: "Q12", Type: model.RowQuestion, Answer: "Yes."},
//	    ).
//	    WriteTo("out.pdf")
//
// For advanced use cases, the lower-level extract, locate, flow, and render
// packages are also available.
package inlay

// Open prepares a Filler for the PDF at filename. Nothing is read until a
// terminal operation like WriteTo is called.
//
// Example:
//
//	report, warnings, err := inlay.Open("form.pdf").RowsFile("rows.json").WriteTo("out.pdf")
func Open(filename string) *Filler {
	return &Filler{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustWrite wraps a call to WriteTo and panics on error, discarding
// warnings.
//
// Example:
//
//	report := inlay.MustWrite(inlay.Open("form.pdf").RowsFile("rows.json").WriteTo("out.pdf"))
func MustWrite(report Report, _ []Warning, err error) Report {
	if err != nil {
		panic(err)
	}
	return report
}

// Report summarizes a fill run.
type Report struct {
	// Processed counts rows whose anchor was found and whose answer was
	// written.
	Processed int

	// Skipped counts rows left untouched because their anchor or caption
	// keyword was not found.
	Skipped int

	// Unresolved lists the labels of skipped rows.
	Unresolved []string

	// ContinuationPages counts pages inserted for overflow content.
	ContinuationPages int
}
