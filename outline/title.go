package outline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// Metadata carries the document-level facts the title extractor may use.
type Metadata struct {
	// Title is the PDF Info-dictionary title, possibly empty or junk.
	Title string

	// FileStem is the input filename without extension, used to reject
	// metadata titles that merely echo the filename.
	FileStem string
}

// TitleConfig holds configuration for title extraction.
type TitleConfig struct {
	// MaxTitleRunes bounds a plausible title's length. Default: 150
	MaxTitleRunes int

	// MaxTitleWords bounds a plausible title's word count. Default: 20
	MaxTitleWords int

	// FirstPageWindow is how many first-page lines, in reading order, are
	// considered "near the top of the page". Default: 15
	FirstPageWindow int
}

// DefaultTitleConfig returns sensible default configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxTitleRunes:   150,
		MaxTitleWords:   20,
		FirstPageWindow: 15,
	}
}

// TitleExtractor chooses the document title. It runs independently of
// heading classification and its output may duplicate the first heading.
type TitleExtractor struct {
	config TitleConfig
}

// NewTitleExtractor creates an extractor with default configuration.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{config: DefaultTitleConfig()}
}

// NewTitleExtractorWithConfig creates an extractor with custom configuration.
func NewTitleExtractorWithConfig(config TitleConfig) *TitleExtractor {
	return &TitleExtractor{config: config}
}

// Extract walks the priority chain and stops at the first strategy that
// yields a plausible title:
//
//  1. the metadata title, unless empty or a generic placeholder;
//  2. the largest-font-rank line near the top of the first page, if it is
//     shaped like a title;
//  3. the first H1 of the computed outline;
//  4. the empty string - a valid terminal outcome, not a failure.
func (e *TitleExtractor) Extract(meta Metadata, lines []model.Line, profile *layout.FontProfile, entries []model.OutlineEntry) string {
	if title := CleanTitle(meta.Title); title != "" && !e.isPlaceholder(title, meta.FileStem) {
		return title
	}

	if title := e.fromFirstPage(lines, profile); title != "" {
		return title
	}

	for _, entry := range entries {
		if entry.Level == model.LevelH1 {
			return entry.Text
		}
	}

	return ""
}

// fromFirstPage looks for the most prominent title-shaped line near the
// top of the first page.
func (e *TitleExtractor) fromFirstPage(lines []model.Line, profile *layout.FontProfile) string {
	if profile == nil || !profile.HasSignal() {
		return ""
	}

	seen := 0
	for _, line := range lines {
		if line.Page != model.FirstPage {
			break
		}
		seen++
		if seen > e.config.FirstPageWindow {
			break
		}
		if profile.Rank(line.FontSize) != 1 {
			continue
		}
		if e.titleLike(line.Text) {
			return CleanTitle(line.Text)
		}
	}
	return ""
}

// titleLike reports whether text has the shape of a standalone title:
// short, not sentence-terminated, not page furniture.
func (e *TitleExtractor) titleLike(text string) bool {
	runes := utf8.RuneCountInString(text)
	if runes < 4 || runes > e.config.MaxTitleRunes {
		return false
	}
	if len(strings.Fields(text)) > e.config.MaxTitleWords {
		return false
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") ||
		strings.HasSuffix(text, ";") || strings.HasSuffix(text, ",") {
		return false
	}
	return !layout.IsArtifactText(text)
}

// isPlaceholder rejects metadata titles that carry no information: empty
// variants of "untitled" or titles that just echo the filename.
func (e *TitleExtractor) isPlaceholder(title, fileStem string) bool {
	lower := strings.ToLower(title)
	if lower == "untitled" || lower == "untitled document" {
		return true
	}
	stem := strings.ToLower(strings.TrimSpace(fileStem))
	if stem != "" && (lower == stem || lower == stem+".pdf") {
		return true
	}
	return false
}

var titlePrefixRe = regexp.MustCompile(`^(?i)(document|report):\s*`)
var titleDotsRe = regexp.MustCompile(`\s*\.{2,}\s*\d*\s*$`)

// CleanTitle collapses whitespace and strips boilerplate prefixes and
// trailing dot-leader artifacts.
func CleanTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	title = titlePrefixRe.ReplaceAllString(title, "")
	title = titleDotsRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}
