package outline

import (
	"fmt"
	"strings"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// Normalizer post-processes classified candidates into a legal outline.
// It is the only stage allowed to adjust a candidate's level or drop it;
// it never re-scores pattern or font signals.
type Normalizer struct {
	artifacts *layout.ArtifactResult
}

// NewNormalizer creates a normalizer. The artifact result may be nil when
// no cross-page detection was run; static artifact shapes are still
// filtered.
func NewNormalizer(artifacts *layout.ArtifactResult) *Normalizer {
	return &Normalizer{artifacts: artifacts}
}

// Normalize applies, in order: consecutive deduplication, artifact
// filtering, and monotonic nesting repair. The result keeps source order;
// entries are never re-sorted.
func (n *Normalizer) Normalize(candidates []classify.Candidate) []model.OutlineEntry {
	entries := make([]model.OutlineEntry, 0, len(candidates))

	active := 0
	var prevKey string
	for _, cand := range candidates {
		// Consecutive candidates with identical normalized text on the
		// same page are one heading rendered as overlapping runs. Any
		// intervening candidate breaks adjacency, even one dropped as an
		// artifact below.
		key := dedupeKey(cand)
		if key == prevKey {
			continue
		}
		prevKey = key

		if n.isArtifact(cand) {
			continue
		}

		level := int(cand.Level)
		if active == 0 {
			// A document starts its outline at the top regardless of the
			// first candidate's raw classification.
			level = int(model.LevelH1)
		} else if level > active+1 {
			// No skipping deeper than one step below the active level.
			level = active + 1
		}
		// Widening (level <= active) is always permitted.
		active = level

		entries = append(entries, model.OutlineEntry{
			Level: model.HeadingLevel(level),
			Text:  cand.Text,
			Page:  cand.Line.Page,
		})
	}

	return entries
}

func (n *Normalizer) isArtifact(cand classify.Candidate) bool {
	if layout.IsArtifactText(cand.Text) {
		return true
	}
	if n.artifacts != nil && n.artifacts.IsArtifact(cand.Line) {
		return true
	}
	return false
}

func dedupeKey(cand classify.Candidate) string {
	return fmt.Sprintf("%s\x00%d", strings.ToLower(cand.Text), cand.Line.Page)
}
