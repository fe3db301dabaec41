// Package outliner provides a fluent API for extracting a structured
// outline (title plus H1-H4 headings with page numbers) from PDF files.
//
// Basic usage:
//
//	result, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	data, err := outliner.Open("report.pdf").
//	    MaxPages(20).
//	    JSON()
//
// For advanced use cases the lower-level pdftext, layout, classify, and
// outline packages are also available.
package outliner

import (
	"github.com/tsawler/outliner/model"
)

// Open prepares an Extractor for the given PDF file. The file is not
// touched until a terminal operation such as Outline() or JSON() runs.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromRuns creates an Extractor over already-collected text runs,
// bypassing file access entirely. This is useful for custom collectors
// and for tests.
//
// Example:
//
//	result, err := outliner.FromRuns(runs).Outline()
func FromRuns(runs []model.TextRun) *Extractor {
	return &Extractor{
		runs:    runs,
		hasRuns: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
