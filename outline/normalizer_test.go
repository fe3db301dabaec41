package outline

import (
	"testing"

	"github.com/tsawler/outliner/classify"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

func candidate(text string, level model.HeadingLevel, page int) classify.Candidate {
	return classify.Candidate{
		Line:       model.Line{Text: text, Page: page},
		Text:       text,
		Level:      level,
		Confidence: 0.8,
	}
}

func TestNormalizeDeduplicatesConsecutive(t *testing.T) {
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("Introduction", model.LevelH1, 1),
		candidate("Introduction", model.LevelH1, 1),
		candidate("introduction", model.LevelH1, 1), // case-insensitive
		candidate("Background", model.LevelH2, 2),
	})

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after dedupe, got %d", len(entries))
	}
	if entries[0].Text != "Introduction" || entries[1].Text != "Background" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestNormalizeKeepsNonConsecutiveRepeats(t *testing.T) {
	// The same section name on different pages is legitimate content.
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("Summary", model.LevelH1, 1),
		candidate("Details", model.LevelH2, 2),
		candidate("Summary", model.LevelH2, 5),
	})

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestNormalizeArtifactBreaksDedupeAdjacency(t *testing.T) {
	// A dropped artifact between two identical candidates still breaks
	// their adjacency; only truly consecutive duplicates collapse.
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("Overview", model.LevelH1, 1),
		candidate("Page 1", model.LevelH1, 1),
		candidate("Overview", model.LevelH1, 1),
	})

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	for i, e := range entries {
		if e.Text != "Overview" {
			t.Errorf("entry %d = %q, want Overview", i, e.Text)
		}
	}
}

func TestNormalizeDropsArtifacts(t *testing.T) {
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("Page 3", model.LevelH1, 3),
		candidate("Introduction", model.LevelH1, 1),
		candidate("42", model.LevelH2, 4),
	})

	if len(entries) != 1 || entries[0].Text != "Introduction" {
		t.Fatalf("artifact candidates survived: %+v", entries)
	}
}

func TestNormalizeDropsRepeatedHeaders(t *testing.T) {
	// A line repeating on three pages at the same vertical band is a
	// running header even if the classifier liked it.
	var lines []model.Line
	for page := 1; page <= 3; page++ {
		lines = append(lines, model.Line{Text: "Annual Report", Page: page, Y: 780})
	}
	artifacts := layout.NewArtifactDetector().Detect(lines)

	n := NewNormalizer(artifacts)
	header := classify.Candidate{
		Line:  model.Line{Text: "Annual Report", Page: 2, Y: 780},
		Text:  "Annual Report",
		Level: model.LevelH1,
	}
	entries := n.Normalize([]classify.Candidate{
		header,
		candidate("Introduction", model.LevelH1, 1),
	})

	if len(entries) != 1 || entries[0].Text != "Introduction" {
		t.Fatalf("repeated header survived: %+v", entries)
	}
}

func TestNormalizePromotesFirstEntry(t *testing.T) {
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("Background", model.LevelH3, 1),
		candidate("Scope", model.LevelH2, 1),
	})

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != model.LevelH1 {
		t.Errorf("first entry = %v, want H1", entries[0].Level)
	}
	if entries[1].Level != model.LevelH2 {
		t.Errorf("second entry = %v, want H2", entries[1].Level)
	}
}

func TestNormalizeLimitsDeepeningToOneStep(t *testing.T) {
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("1. Introduction", model.LevelH1, 1),
		candidate("(a) Fine detail", model.LevelH4, 1),
	})

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Level != model.LevelH2 {
		t.Errorf("deepening jump: got %v, want H2", entries[1].Level)
	}
}

func TestNormalizeAllowsArbitraryWidening(t *testing.T) {
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("1. Introduction", model.LevelH1, 1),
		candidate("1.1 Background", model.LevelH2, 1),
		candidate("1.1.1 Detail", model.LevelH3, 2),
		candidate("2. Methods", model.LevelH1, 3),
	})

	want := []model.HeadingLevel{model.LevelH1, model.LevelH2, model.LevelH3, model.LevelH1}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, lvl := range want {
		if entries[i].Level != lvl {
			t.Errorf("entry %d = %v, want %v", i, entries[i].Level, lvl)
		}
	}
}

func TestNormalizePreservesSourceOrderAndPages(t *testing.T) {
	n := NewNormalizer(nil)

	entries := n.Normalize([]classify.Candidate{
		candidate("Alpha", model.LevelH1, 2),
		candidate("Beta", model.LevelH2, 5),
		candidate("Gamma", model.LevelH1, 9),
	})

	pages := []int{2, 5, 9}
	for i, p := range pages {
		if entries[i].Page != p {
			t.Errorf("entry %d page = %d, want %d", i, entries[i].Page, p)
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := NewNormalizer(nil)
	entries := n.Normalize(nil)
	if entries == nil {
		t.Fatal("Normalize(nil) returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty outline, got %d entries", len(entries))
	}
}
