package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
)

// DefaultMaxPages caps how many pages a single document contributes.
// Outlines live in front matter and section starts; pages past the cap
// add latency, not headings.
const DefaultMaxPages = 50

// Collector yields the positioned text runs of one document.
type Collector interface {
	Collect(ctx context.Context) ([]model.TextRun, error)
}

// CollectorConfig holds configuration for file collection.
type CollectorConfig struct {
	// MaxPages caps the pages read per document. Zero means
	// DefaultMaxPages; negative means unlimited.
	MaxPages int

	// Logger receives per-document diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// FileCollector reads text runs from a PDF file on disk.
type FileCollector struct {
	path   string
	config CollectorConfig
}

// NewFileCollector creates a collector for the given path with default
// configuration.
func NewFileCollector(path string) *FileCollector {
	return NewFileCollectorWithConfig(path, CollectorConfig{})
}

// NewFileCollectorWithConfig creates a collector with custom configuration.
func NewFileCollectorWithConfig(path string, config CollectorConfig) *FileCollector {
	return &FileCollector{path: path, config: config}
}

// Collect reads every page up to the configured cap and returns its text
// runs in page order. A page whose content stream cannot be parsed is
// skipped, not fatal: partial extraction still yields a usable outline.
func (c *FileCollector) Collect(ctx context.Context) ([]model.TextRun, error) {
	f, reader, err := pdflib.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", c.path, err)
	}
	defer f.Close()

	logger := c.logger()

	pages := reader.NumPage()
	max := c.maxPages()
	if max > 0 && pages > max {
		logger.Warn("page cap applied",
			"path", c.path, "pages", pages, "cap", max)
		pages = max
	}

	var runs []model.TextRun
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pageRuns, err := collectPage(reader, i)
		if err != nil {
			logger.Warn("skipping unreadable page",
				"path", c.path, "page", i, "error", err)
			continue
		}
		runs = append(runs, pageRuns...)
	}
	return runs, nil
}

// collectPage extracts one page's runs. The underlying parser panics on
// some malformed content streams, so the panic is converted to an error
// and the page is skipped by the caller.
func collectPage(reader *pdflib.Reader, pageNum int) (runs []model.TextRun, err error) {
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = fmt.Errorf("parse page %d: %v", pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	runs = make([]model.TextRun, 0, len(content.Text))
	for _, text := range content.Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		runs = append(runs, model.TextRun{
			Text:     text.S,
			FontName: text.Font,
			FontSize: text.FontSize,
			Bold:     boldFont(text.Font),
			Italic:   italicFont(text.Font),
			Page:     pageNum,
			X:        text.X,
			Y:        text.Y,
		})
	}
	return runs, nil
}

func (c *FileCollector) maxPages() int {
	switch {
	case c.config.MaxPages > 0:
		return c.config.MaxPages
	case c.config.MaxPages < 0:
		return 0
	default:
		return DefaultMaxPages
	}
}

func (c *FileCollector) logger() *slog.Logger {
	if c.config.Logger != nil {
		return c.config.Logger
	}
	return slog.Default()
}

// boldFont reports whether a font name indicates a bold weight.
// PDF content streams carry no weight attribute, so the subset name
// ("ABCDEF+Helvetica-Bold") is the available signal.
func boldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// italicFont reports whether a font name indicates an italic or oblique
// face.
func italicFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}
