package layout

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// AssemblerConfig holds configuration for line assembly.
type AssemblerConfig struct {
	// BaselineTolerance is the maximum vertical distance, in points, between
	// two runs considered to sit on the same visual baseline.
	// Default: 2.0
	BaselineTolerance float64
}

// DefaultAssemblerConfig returns sensible default configuration.
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		BaselineTolerance: 2.0,
	}
}

// Assembler groups text runs into logical lines.
type Assembler struct {
	config AssemblerConfig
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return &Assembler{config: DefaultAssemblerConfig()}
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config AssemblerConfig) *Assembler {
	return &Assembler{config: config}
}

// Assemble groups runs into lines in reading order (page ascending, then
// top to bottom). An empty or nil run sequence yields an empty line
// sequence, not an error; downstream stages then produce an empty outline.
//
// The result is independent of the input order of runs that belong to the
// same line: runs are sorted into position before any per-line statistic
// is computed.
func (a *Assembler) Assemble(runs []model.TextRun) []model.Line {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]model.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		if sorted[i].Y != sorted[j].Y {
			// PDF coordinates: larger Y is nearer the top of the page.
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []model.Line
	var group []model.TextRun

	flush := func() {
		if len(group) == 0 {
			return
		}
		if line, ok := a.buildLine(group); ok {
			line.Order = len(lines)
			lines = append(lines, line)
		}
		group = group[:0]
	}

	for _, run := range sorted {
		if len(group) > 0 {
			prev := group[0]
			sameBaseline := run.Page == prev.Page &&
				abs(run.Y-prev.Y) <= a.config.BaselineTolerance
			if !sameBaseline {
				flush()
			}
		}
		group = append(group, run)
	}
	flush()

	return lines
}

// buildLine merges one baseline group into a Line. Returns false for
// whitespace-only groups, which are dropped.
func (a *Assembler) buildLine(group []model.TextRun) (model.Line, bool) {
	ordered := make([]model.TextRun, len(group))
	copy(ordered, group)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].X < ordered[j].X
	})

	var sb strings.Builder
	for _, run := range ordered {
		if sb.Len() > 0 && needsSpace(sb.String(), run.Text) {
			sb.WriteByte(' ')
		}
		sb.WriteString(run.Text)
	}

	text := NormalizeText(sb.String())
	if text == "" {
		return model.Line{}, false
	}

	line := model.Line{
		Text:     text,
		Page:     ordered[0].Page,
		FontSize: dominantSize(ordered),
		X:        ordered[0].X,
		Y:        ordered[0].Y,
	}
	line.Bold, line.Italic = majorityFlags(ordered)
	return line, true
}

// dominantSize returns the size of the line's most frequent run size,
// weighted by text length. Ties break toward the larger size, since larger
// sizes correlate with heading prominence.
func dominantSize(runs []model.TextRun) float64 {
	weights := make(map[int]int)
	sizes := make(map[int]float64)
	for _, run := range runs {
		bucket := sizeBucket(run.FontSize)
		weights[bucket] += runeWeight(run.Text)
		sizes[bucket] = run.FontSize
	}

	best := 0
	bestWeight := -1
	for bucket, w := range weights {
		if w > bestWeight || (w == bestWeight && bucket > best) {
			best = bucket
			bestWeight = w
		}
	}
	return sizes[best]
}

// majorityFlags reports bold/italic when the majority of the line's text
// carries the flag.
func majorityFlags(runs []model.TextRun) (bold, italic bool) {
	var total, boldW, italicW int
	for _, run := range runs {
		w := runeWeight(run.Text)
		total += w
		if run.Bold {
			boldW += w
		}
		if run.Italic {
			italicW += w
		}
	}
	if total == 0 {
		return false, false
	}
	return boldW*2 > total, italicW*2 > total
}

// NormalizeText applies NFC normalization, trims, and collapses internal
// whitespace to single spaces.
func NormalizeText(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

func runeWeight(s string) int {
	n := len(strings.TrimSpace(s))
	if n == 0 {
		return 0
	}
	return n
}

func needsSpace(before, next string) bool {
	if before == "" || next == "" {
		return false
	}
	return !strings.HasSuffix(before, " ") && !strings.HasPrefix(next, " ")
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
