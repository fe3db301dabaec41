package layout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// artifactPatterns match text shapes that are page furniture rather than
// content: bare page numbers, copyright lines, URLs, email addresses,
// dates, and figure/table captions.
var artifactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`^(?i)page\s+\d+`),
	regexp.MustCompile(`^©\s*\d{4}`),
	regexp.MustCompile(`^(?i)copyright`),
	regexp.MustCompile(`^(?i)(www\.|https?://)`),
	regexp.MustCompile(`^\S+@\S+\.\S+$`),
	regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	regexp.MustCompile(`^(?i)(figure|table|chart)\s+\d+`),
	regexp.MustCompile(`^(?i)version\s+\d+\.\d+`),
	regexp.MustCompile(`^(?i)draft\s+\d+`),
}

// IsArtifactText reports whether text matches a known page-artifact shape.
func IsArtifactText(text string) bool {
	text = strings.TrimSpace(text)
	for _, pattern := range artifactPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// ArtifactConfig holds configuration for running header/footer detection.
type ArtifactConfig struct {
	// MinRepeatPages is the number of distinct pages the same text must
	// appear on, at the same vertical band, to count as a running
	// header/footer. Default: 3
	MinRepeatPages int

	// PositionBand is the height, in points, of the vertical band used to
	// decide that two occurrences are "at the same position".
	// Default: 12.0
	PositionBand float64
}

// DefaultArtifactConfig returns sensible default configuration.
func DefaultArtifactConfig() ArtifactConfig {
	return ArtifactConfig{
		MinRepeatPages: 3,
		PositionBand:   12.0,
	}
}

// ArtifactDetector finds lines repeated across pages at the same position,
// the signature of running headers and footers.
type ArtifactDetector struct {
	config ArtifactConfig
}

// NewArtifactDetector creates a detector with default configuration.
func NewArtifactDetector() *ArtifactDetector {
	return &ArtifactDetector{config: DefaultArtifactConfig()}
}

// NewArtifactDetectorWithConfig creates a detector with custom configuration.
func NewArtifactDetectorWithConfig(config ArtifactConfig) *ArtifactDetector {
	return &ArtifactDetector{config: config}
}

// ArtifactResult records which lines were identified as page artifacts.
type ArtifactResult struct {
	repeated map[string]bool
	config   ArtifactConfig
}

// Detect scans the full document line set for repeated header/footer text.
func (d *ArtifactDetector) Detect(lines []model.Line) *ArtifactResult {
	result := &ArtifactResult{
		repeated: make(map[string]bool),
		config:   d.config,
	}

	pagesByKey := make(map[string]map[int]bool)
	for _, line := range lines {
		key := d.key(line)
		if pagesByKey[key] == nil {
			pagesByKey[key] = make(map[int]bool)
		}
		pagesByKey[key][line.Page] = true
	}

	for key, pages := range pagesByKey {
		if len(pages) >= d.config.MinRepeatPages {
			result.repeated[key] = true
		}
	}
	return result
}

// IsRepeated reports whether the line's text recurs on enough pages at the
// same vertical band to be a running header or footer.
func (r *ArtifactResult) IsRepeated(line model.Line) bool {
	if r == nil {
		return false
	}
	return r.repeated[r.key(line)]
}

// IsArtifact reports whether the line should be excluded from the outline,
// either because it is a repeated header/footer or because its text matches
// a static artifact shape.
func (r *ArtifactResult) IsArtifact(line model.Line) bool {
	return r.IsRepeated(line) || IsArtifactText(line.Text)
}

func (r *ArtifactResult) key(line model.Line) string {
	return r.config.key(line)
}

func (d *ArtifactDetector) key(line model.Line) string {
	return d.config.key(line)
}

func (c ArtifactConfig) key(line model.Line) string {
	band := 0
	if c.PositionBand > 0 {
		band = int(line.Y / c.PositionBand)
	}
	return fmt.Sprintf("%s\x00%d", strings.ToLower(line.Text), band)
}
