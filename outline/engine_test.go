package outline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/tsawler/outliner/model"
)

func run(text string, size float64, page int, y float64, bold bool) model.TextRun {
	return model.TextRun{Text: text, FontSize: size, Page: page, X: 72, Y: y, Bold: bold}
}

// numberedDoc is a three-page report with a distinct title line, numbered
// headings at descending sizes, a running header, and body prose.
func numberedDoc() []model.TextRun {
	return []model.TextRun{
		run("Annual Report", 10, 1, 790, false),
		run("Understanding AI: A Comprehensive Guide", 28, 1, 740, false),
		run("1. Introduction", 22, 1, 690, false),
		run("This guide walks through the concepts that are needed for the rest of the material.", 11, 1, 650, false),

		run("Annual Report", 10, 2, 790, false),
		run("1.1 Background", 16, 2, 720, false),
		run("The project was delivered on time and the stakeholders were satisfied with the results.", 11, 2, 680, false),
		run("1.1.1 Objectives", 13, 2, 620, false),

		run("Annual Report", 10, 3, 790, false),
		run("2. Methods", 22, 3, 720, false),
		run("The methodology is described in the sections that follow for each of the phases.", 11, 3, 680, false),
	}
}

func TestExtractNumberedDocument(t *testing.T) {
	e := NewEngine()
	result := e.Extract(Input{Runs: numberedDoc(), FileStem: "guide"})

	if result.Title != "Understanding AI: A Comprehensive Guide" {
		t.Errorf("title = %q", result.Title)
	}

	want := []model.OutlineEntry{
		{Level: model.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: model.LevelH2, Text: "1.1 Background", Page: 2},
		{Level: model.LevelH3, Text: "1.1.1 Objectives", Page: 2},
		{Level: model.LevelH1, Text: "2. Methods", Page: 3},
	}
	if len(result.Outline) != len(want) {
		t.Fatalf("outline length = %d, want %d: %+v", len(result.Outline), len(want), result.Outline)
	}
	for i, w := range want {
		if result.Outline[i] != w {
			t.Errorf("outline[%d] = %+v, want %+v", i, result.Outline[i], w)
		}
	}
}

func TestExtractVocabularyOnlyDocument(t *testing.T) {
	runs := []model.TextRun{
		run("Executive Summary", 20, 1, 740, true),
		run("The year closed with revenue ahead of the plan that was set in the spring.", 11, 1, 700, false),
		run("Background", 16, 1, 640, false),
		run("Demand grew steadily in each of the regions that the sales team had targeted.", 11, 1, 600, false),
	}

	result := NewEngine().Extract(Input{Runs: runs})

	if len(result.Outline) != 2 {
		t.Fatalf("outline length = %d, want 2: %+v", len(result.Outline), result.Outline)
	}
	if result.Outline[0].Level != model.LevelH1 || result.Outline[0].Text != "Executive Summary" {
		t.Errorf("outline[0] = %+v", result.Outline[0])
	}
	if result.Outline[1].Level != model.LevelH2 || result.Outline[1].Text != "Background" {
		t.Errorf("outline[1] = %+v", result.Outline[1])
	}
}

func TestExtractMetadataTitleWins(t *testing.T) {
	e := NewEngine()
	result := e.Extract(Input{
		Runs:      numberedDoc(),
		MetaTitle: "AI Field Guide",
		FileStem:  "guide",
	})
	if result.Title != "AI Field Guide" {
		t.Errorf("title = %q, want metadata title", result.Title)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	result := NewEngine().Extract(Input{})

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"title":"","outline":[]}` {
		t.Errorf("empty result JSON = %s", data)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	e := NewEngine()
	in := Input{Runs: numberedDoc(), FileStem: "guide"}

	first, err := json.Marshal(e.Extract(in))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(e.Extract(in))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("repeated extraction differs:\n%s\n%s", first, second)
	}
}

func TestExtractNestingIsMonotonic(t *testing.T) {
	result := NewEngine().Extract(Input{Runs: numberedDoc()})

	active := 0
	for i, entry := range result.Outline {
		if !entry.Level.Valid() {
			t.Fatalf("outline[%d] has invalid level %v", i, entry.Level)
		}
		if i == 0 && entry.Level != model.LevelH1 {
			t.Errorf("first entry = %v, want H1", entry.Level)
		}
		if int(entry.Level) > active+1 {
			t.Errorf("outline[%d] jumps from %d to %v", i, active, entry.Level)
		}
		active = int(entry.Level)
	}
}

func TestExtractFiltersRunningHeaders(t *testing.T) {
	result := NewEngine().Extract(Input{Runs: numberedDoc()})
	for _, entry := range result.Outline {
		if entry.Text == "Annual Report" {
			t.Error("running header leaked into outline")
		}
	}
	if result.Title == "Annual Report" {
		t.Error("running header leaked into title")
	}
}
