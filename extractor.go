package outliner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
	"github.com/tsawler/outliner/pdftext"
)

// Extractor provides a fluent interface for extracting a document
// outline. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: either a filename or pre-collected runs.
	filename string
	runs     []model.TextRun
	hasRuns  bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// Each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		runs:     e.runs,
		hasRuns:  e.hasRuns,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// MaxPages caps how many pages are read from the document. Zero restores
// the default cap; a negative value removes the cap entirely.
//
// Example:
//
//	result, err := outliner.Open("doc.pdf").MaxPages(20).Outline()
func (e *Extractor) MaxPages(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxPages = n
	return newExt
}

// MetaTitle overrides the PDF metadata title for title extraction.
// Setting it to the empty string disables the metadata strategy and
// forces the layout-based fallbacks.
//
// Example:
//
//	result, err := outliner.Open("doc.pdf").MetaTitle("Field Manual").Outline()
func (e *Extractor) MetaTitle(title string) *Extractor {
	newExt := e.clone()
	newExt.options.metaTitle = title
	newExt.options.hasTitle = true
	return newExt
}

// WithEngineConfig replaces the pipeline tuning used for classification
// and normalization.
//
// Example:
//
//	cfg := outline.DefaultEngineConfig()
//	cfg.Classify.AcceptThreshold = 0.5
//	result, err := outliner.Open("doc.pdf").WithEngineConfig(cfg).Outline()
func (e *Extractor) WithEngineConfig(cfg outline.EngineConfig) *Extractor {
	newExt := e.clone()
	newExt.options.engine = cfg
	return newExt
}

// Outline runs the extraction pipeline and returns the document title
// and heading outline. This is a terminal operation.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Outline()
func (e *Extractor) Outline() (model.Result, error) {
	return e.OutlineContext(context.Background())
}

// OutlineContext is Outline with cancellation. The context bounds page
// collection; the in-memory pipeline itself is not interruptible.
func (e *Extractor) OutlineContext(ctx context.Context) (model.Result, error) {
	if e.err != nil {
		return model.Result{}, e.err
	}

	in, err := e.buildInput(ctx)
	if err != nil {
		return model.Result{}, err
	}

	engine := outline.NewEngineWithConfig(e.options.engine)
	return engine.Extract(in), nil
}

// JSON runs the extraction pipeline and returns the result serialized in
// the output contract: {"title": ..., "outline": [...]}. This is a
// terminal operation.
//
// Example:
//
//	data, err := outliner.Open("document.pdf").JSON()
func (e *Extractor) JSON() ([]byte, error) {
	result, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}

// PageCount returns the document's total page count, before any cap.
//
// Example:
//
//	count, err := outliner.Open("document.pdf").PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.hasRuns {
		return 0, fmt.Errorf("page count requires a file source")
	}
	info, err := pdftext.ReadInfo(e.filename)
	if err != nil {
		return 0, err
	}
	return info.Pages, nil
}

// buildInput assembles the engine input from whichever source the
// Extractor was created with.
func (e *Extractor) buildInput(ctx context.Context) (outline.Input, error) {
	if e.hasRuns {
		in := outline.Input{Runs: e.runs}
		if e.options.hasTitle {
			in.MetaTitle = e.options.metaTitle
		}
		return in, nil
	}

	if e.filename == "" {
		return outline.Input{}, fmt.Errorf("no filename specified")
	}

	collector := pdftext.NewFileCollectorWithConfig(e.filename, pdftext.CollectorConfig{
		MaxPages: e.options.maxPages,
	})
	runs, err := collector.Collect(ctx)
	if err != nil {
		return outline.Input{}, err
	}

	in := outline.Input{
		Runs:     runs,
		FileStem: pdftext.FileStem(e.filename),
	}
	if e.options.hasTitle {
		in.MetaTitle = e.options.metaTitle
	} else if info, err := pdftext.ReadInfo(e.filename); err == nil {
		// Metadata is best effort: a broken Info dictionary just means
		// the title extractor uses its layout fallbacks.
		in.MetaTitle = info.Title
	}
	return in, nil
}
