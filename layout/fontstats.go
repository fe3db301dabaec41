package layout

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// sizeBucket maps a font size to a comparison bucket at 0.1pt precision,
// so sizes that differ only by float noise rank together.
func sizeBucket(size float64) int {
	return int(size*10 + 0.5)
}

// FontProfile holds per-document font statistics. Absolute point sizes vary
// across documents (a 14pt heading in one PDF may equal body text in
// another), so downstream signals use a line's size rank - its position in
// the document's descending list of distinct sizes - instead of the raw
// size.
//
// A FontProfile is computed once per document from the full line set and is
// immutable afterward.
type FontProfile struct {
	// Mean is the mean font size over all lines.
	Mean float64

	// RankedSizes is the set of distinct sizes observed, descending.
	RankedSizes []float64

	rankBySize map[int]int
}

// NewFontProfile computes a profile from the complete line set.
func NewFontProfile(lines []model.Line) *FontProfile {
	p := &FontProfile{rankBySize: make(map[int]int)}
	if len(lines) == 0 {
		return p
	}

	var sum float64
	seen := make(map[int]float64)
	for _, line := range lines {
		sum += line.FontSize
		seen[sizeBucket(line.FontSize)] = line.FontSize
	}
	p.Mean = sum / float64(len(lines))

	p.RankedSizes = make([]float64, 0, len(seen))
	for _, size := range seen {
		p.RankedSizes = append(p.RankedSizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(p.RankedSizes)))

	for i, size := range p.RankedSizes {
		p.rankBySize[sizeBucket(size)] = i + 1
	}
	return p
}

// Rank returns the 1-based rank of a size in the document's descending
// distinct-size list (1 = largest). Returns 0 for sizes never observed.
func (p *FontProfile) Rank(size float64) int {
	return p.rankBySize[sizeBucket(size)]
}

// HasSignal reports whether font size carries any information for this
// document. A document set entirely in one size has no font signal: every
// line ranks first, so rank must not be read as heading evidence.
func (p *FontProfile) HasSignal() bool {
	return len(p.RankedSizes) > 1
}

// SizeCount returns the number of distinct sizes observed.
func (p *FontProfile) SizeCount() int {
	return len(p.RankedSizes)
}
