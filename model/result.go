package model

import (
	"encoding/json"
	"fmt"
)

// HeadingLevel represents the hierarchical level of a heading (H1-H4).
type HeadingLevel int

const (
	LevelNone HeadingLevel = iota
	LevelH1                // top-level section or chapter
	LevelH2                // major section
	LevelH3                // subsection
	LevelH4                // sub-subsection
)

// MaxLevel is the deepest heading level the engine classifies.
const MaxLevel = LevelH4

// String returns the wire representation of the level ("H1".."H4").
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return "none"
	}
}

// Valid reports whether l is a classifiable heading level.
func (l HeadingLevel) Valid() bool {
	return l >= LevelH1 && l <= MaxLevel
}

// MarshalJSON serializes the level as its string form, e.g. "H2".
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON parses "H1".."H4".
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	case "H4":
		*l = LevelH4
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// OutlineEntry is one heading in the final outline.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Result is the complete output for one document.
//
// Title may be the empty string, which is a valid outcome meaning "no
// discoverable title", not an error. Outline is ordered by position in the
// source document and serializes as [] when empty, never null.
type Result struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// NewResult returns an empty Result whose outline serializes as [].
func NewResult() Result {
	return Result{Outline: []OutlineEntry{}}
}

// MarshalJSON guarantees a non-null outline array.
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	a := alias(r)
	if a.Outline == nil {
		a.Outline = []OutlineEntry{}
	}
	return json.Marshal(a)
}
