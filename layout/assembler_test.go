package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// makeRun creates a text run for assembler tests.
func makeRun(text string, page int, x, y, size float64) model.TextRun {
	return model.TextRun{
		Text:     text,
		Page:     page,
		X:        x,
		Y:        y,
		FontSize: size,
	}
}

func TestAssembleEmpty(t *testing.T) {
	a := NewAssembler()

	if lines := a.Assemble(nil); len(lines) != 0 {
		t.Errorf("nil input: expected 0 lines, got %d", len(lines))
	}
	if lines := a.Assemble([]model.TextRun{}); len(lines) != 0 {
		t.Errorf("empty input: expected 0 lines, got %d", len(lines))
	}
}

func TestAssembleSingleLine(t *testing.T) {
	a := NewAssembler()
	runs := []model.TextRun{
		makeRun("1.", 1, 72, 700, 18),
		makeRun("Introduction", 1, 90, 700, 18),
	}

	lines := a.Assemble(runs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "1. Introduction" {
		t.Errorf("text = %q, want %q", lines[0].Text, "1. Introduction")
	}
	if lines[0].FontSize != 18 {
		t.Errorf("font size = %v, want 18", lines[0].FontSize)
	}
	if lines[0].Page != 1 {
		t.Errorf("page = %d, want 1", lines[0].Page)
	}
}

func TestAssembleBaselineTolerance(t *testing.T) {
	a := NewAssembler()
	runs := []model.TextRun{
		makeRun("same", 1, 72, 700, 12),
		makeRun("baseline", 1, 120, 701.5, 12), // within 2pt tolerance
		makeRun("next line", 1, 72, 680, 12),
	}

	lines := a.Assemble(runs)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "same baseline" {
		t.Errorf("line 0 = %q, want %q", lines[0].Text, "same baseline")
	}
	if lines[1].Text != "next line" {
		t.Errorf("line 1 = %q, want %q", lines[1].Text, "next line")
	}
}

// Reordering runs that belong to the same line must not change the
// resulting line's font size or flags.
func TestAssembleRankStability(t *testing.T) {
	a := NewAssembler()
	runs := []model.TextRun{
		{Text: "Executive", Page: 1, X: 72, Y: 700, FontSize: 20, Bold: true},
		{Text: "Summary", Page: 1, X: 180, Y: 700, FontSize: 20, Bold: true},
		{Text: "*", Page: 1, X: 260, Y: 700.5, FontSize: 9},
	}
	reversed := []model.TextRun{runs[2], runs[0], runs[1]}

	first := a.Assemble(runs)
	second := a.Assemble(reversed)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 line from each ordering, got %d and %d", len(first), len(second))
	}
	if first[0].Text != second[0].Text {
		t.Errorf("text differs by input order: %q vs %q", first[0].Text, second[0].Text)
	}
	if first[0].FontSize != second[0].FontSize {
		t.Errorf("font size differs by input order: %v vs %v", first[0].FontSize, second[0].FontSize)
	}
	if first[0].Bold != second[0].Bold {
		t.Errorf("bold flag differs by input order")
	}
}

func TestAssembleDominantSizeTieBreaksLarger(t *testing.T) {
	a := NewAssembler()
	// Equal text weight at two sizes; the larger size must win.
	runs := []model.TextRun{
		makeRun("AAAA", 1, 72, 700, 12),
		makeRun("BBBB", 1, 130, 700, 16),
	}

	lines := a.Assemble(runs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].FontSize != 16 {
		t.Errorf("tie should break toward larger size: got %v, want 16", lines[0].FontSize)
	}
}

func TestAssembleMajorityFlags(t *testing.T) {
	a := NewAssembler()
	runs := []model.TextRun{
		{Text: "mostly bold text", Page: 1, X: 72, Y: 700, FontSize: 12, Bold: true},
		{Text: "tail", Page: 1, X: 200, Y: 700, FontSize: 12},
	}

	lines := a.Assemble(runs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !lines[0].Bold {
		t.Error("majority-bold line should be bold")
	}
	if lines[0].Italic {
		t.Error("line without italic runs should not be italic")
	}
}

func TestAssembleDropsWhitespaceOnlyLines(t *testing.T) {
	a := NewAssembler()
	runs := []model.TextRun{
		makeRun("   ", 1, 72, 700, 12),
		makeRun("\t", 1, 100, 700, 12),
		makeRun("real content", 1, 72, 650, 12),
	}

	lines := a.Assemble(runs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "real content" {
		t.Errorf("text = %q, want %q", lines[0].Text, "real content")
	}
}

func TestAssembleOrderStrictlyIncreasing(t *testing.T) {
	a := NewAssembler()
	// Supplied out of reading order on purpose.
	runs := []model.TextRun{
		makeRun("page two", 2, 72, 700, 12),
		makeRun("page one bottom", 1, 72, 100, 12),
		makeRun("page one top", 1, 72, 700, 12),
	}

	lines := a.Assemble(runs)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	want := []string{"page one top", "page one bottom", "page two"}
	for i, text := range want {
		if lines[i].Text != text {
			t.Errorf("line %d = %q, want %q", i, lines[i].Text, text)
		}
		if lines[i].Order != i {
			t.Errorf("line %d order = %d, want %d", i, lines[i].Order, i)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"  spaced   out  ", "spaced out"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.expected {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
