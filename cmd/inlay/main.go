// Command inlay writes answer rows into a labeled PDF questionnaire.
//
// Usage:
//
//	inlay --pdf questionnaire.pdf --in answers.xlsx [--out answered.pdf]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tsawler/inlay"
)

func main() {
	pdfPath := flag.String("pdf", "", "path to the source PDF (required)")
	inPath := flag.String("in", "", "path to the answer rows, .json or .xlsx (required)")
	outPath := flag.String("out", "", "path for the output PDF (default: <pdf>-answered.pdf)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	if *pdfPath == "" || *inPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	for _, path := range []string{*pdfPath, *inPath} {
		if _, err := os.Stat(path); err != nil {
			slog.Error("input not readable", "path", path, "error", err)
			os.Exit(1)
		}
	}

	dest := *outPath
	if dest == "" {
		dest = strings.TrimSuffix(*pdfPath, ".pdf") + "-answered.pdf"
	}

	report, warnings, err := inlay.Open(*pdfPath).
		RowsFile(*inPath).
		WriteTo(dest)
	if err != nil {
		slog.Error("fill failed", "error", err)
		os.Exit(1)
	}

	for _, w := range warnings {
		slog.Warn(w.Message, "code", string(w.Code), "label", w.Label)
	}

	slog.Info("done",
		"output", dest,
		"processed", report.Processed,
		"skipped", report.Skipped,
		"continuation_pages", report.ContinuationPages,
	)
	if len(report.Unresolved) > 0 {
		fmt.Fprintf(os.Stderr, "unresolved labels: %s\n", strings.Join(report.Unresolved, ", "))
	}
}
