package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// Signal identifies which evidence contributed to a candidate.
type Signal uint8

const (
	SignalPattern Signal = 1 << iota
	SignalFont
	SignalStructure
	SignalContext
)

// Has reports whether the set contains the given signal.
func (s Signal) Has(f Signal) bool {
	return s&f != 0
}

// Candidate is a line provisionally classified as a heading. Only the
// hierarchy normalizer may adjust its level or drop it; pattern and font
// signals are never re-scored after creation.
type Candidate struct {
	// Line is the source line, unmodified.
	Line model.Line

	// Text is the cleaned heading text destined for the outline.
	Text string

	// Level is the tentative heading level.
	Level model.HeadingLevel

	// Confidence is the combined score in [0, 1].
	Confidence float64

	// Signals records which evidence supported the classification.
	Signals Signal
}

// Classifier scores lines against a font profile using an immutable
// configuration. One classifier serves one document; construction is cheap.
type Classifier struct {
	config  Config
	library *PatternLibrary
	profile *layout.FontProfile
}

// NewClassifier creates a classifier with default tuning.
func NewClassifier(profile *layout.FontProfile) *Classifier {
	return NewClassifierWithConfig(profile, DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom tuning.
func NewClassifierWithConfig(profile *layout.FontProfile, config Config) *Classifier {
	return &Classifier{
		config:  config,
		library: NewPatternLibrary(),
		profile: profile,
	}
}

// Classify scores every line and returns the accepted candidates in
// document order. Lines below the acceptance threshold are discarded, not
// returned as "none"-level noise.
func (c *Classifier) Classify(lines []model.Line) []Candidate {
	var candidates []Candidate
	for _, line := range lines {
		if cand, ok := c.classify(line); ok {
			candidates = append(candidates, cand)
		}
	}
	return candidates
}

// fontSignal maps a size rank to the level it suggests and the strength of
// that suggestion. Rank 1 is the largest distinct size in the document.
var fontSignal = [...]struct {
	level    model.HeadingLevel
	strength float64
}{
	1: {model.LevelH1, 0.90},
	2: {model.LevelH2, 0.75},
	3: {model.LevelH3, 0.60},
	4: {model.LevelH4, 0.45},
}

func (c *Classifier) classify(line model.Line) (Candidate, bool) {
	text := line.Text
	runes := utf8.RuneCountInString(text)
	if runes < c.config.MinRunes || runes > c.config.MaxRunes {
		return Candidate{}, false
	}
	if layout.IsArtifactText(text) {
		return Candidate{}, false
	}

	ctx := c.contextScore(line, runes)
	if ctx <= c.config.VetoScore {
		// Body prose veto: even a numbered line that is actually a long
		// sentence is rejected here.
		return Candidate{}, false
	}

	var scores [model.MaxLevel + 1]float64
	var signals Signal

	if rule, ok := c.library.Match(text); ok {
		scores[rule.Level] += rule.Weight * c.config.PatternWeight
		signals |= SignalPattern
	}

	if depth := NumberingDepth(text); depth > 0 {
		level := model.HeadingLevel(depth)
		if level > model.MaxLevel {
			level = model.MaxLevel
		}
		scores[level] += 0.90 * c.config.StructureWeight
		signals |= SignalStructure
	}

	if c.profile != nil && c.profile.HasSignal() {
		rank := c.profile.Rank(line.FontSize)
		if rank >= 1 && rank < len(fontSignal) {
			sig := fontSignal[rank]
			strength := sig.strength
			if !line.Bold && !line.Italic && !isAllCaps(text) {
				// Plain body-weight text at a large size is weaker evidence
				// than emphasized text at the same rank.
				strength *= c.config.PlainEmphasisFactor
			}
			scores[sig.level] += strength * c.config.FontWeight
			signals |= SignalFont
		}
	}

	// Shallowest level wins ties: iterate H1 downward and replace only on
	// strictly greater score.
	best := model.LevelNone
	bestScore := 0.0
	for level := model.LevelH1; level <= model.MaxLevel; level++ {
		if scores[level] > bestScore {
			best = level
			bestScore = scores[level]
		}
	}
	if best == model.LevelNone {
		return Candidate{}, false
	}

	if ctx != 0 {
		signals |= SignalContext
	}
	total := bestScore + ctx*c.config.ContextWeight
	if total < c.config.AcceptThreshold {
		return Candidate{}, false
	}

	return Candidate{
		Line:       line,
		Text:       CleanHeadingText(text),
		Level:      best,
		Confidence: clamp01(total),
		Signals:    signals,
	}, true
}

// functionWords are common English words whose density marks body prose.
var functionWords = map[string]bool{
	"the": true, "and": true, "of": true, "to": true, "in": true,
	"for": true, "with": true, "on": true, "at": true, "by": true,
	"a": true, "an": true, "is": true, "are": true, "was": true,
}

// contextScore rates the line's shape in [-1, 1]: positive for short,
// label-like text, negative for body prose.
func (c *Classifier) contextScore(line model.Line, runes int) float64 {
	text := line.Text
	words := strings.Fields(text)
	score := 0.0

	terminal := strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") ||
		strings.HasSuffix(text, ";")

	if runes <= 60 && !terminal {
		score += 0.4
	}
	if strings.HasSuffix(text, ":") {
		score += 0.3
	}
	if isAllCaps(text) || isTitleCase(words) {
		score += 0.3
	}
	if line.Bold {
		score += 0.2
	}

	if terminal {
		score -= 0.4
	}
	if len(words) > 20 {
		score -= 0.4
	}
	if isLowercaseProse(text) {
		score -= 0.5
	}

	fw := functionWordCount(words)
	switch {
	case fw >= 4 && runes > 50:
		score -= 0.8
	case fw >= 3 && runes > 40:
		score -= 0.5
	}
	if strings.Count(text, ". ") >= 2 && runes > 40 {
		score -= 0.8
	}

	return clamp(score, -1, 1)
}

func functionWordCount(words []string) int {
	n := 0
	for _, w := range words {
		if functionWords[strings.ToLower(strings.Trim(w, ".,;:"))] {
			n++
		}
	}
	return n
}

// isAllCaps reports whether the text's letters are essentially all
// uppercase. Requires at least three letters so initialisms in short
// artifacts do not qualify.
func isAllCaps(text string) bool {
	var upper, lower int
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// isTitleCase reports whether the majority of significant words start with
// an uppercase letter. Leading numbering is ignored.
func isTitleCase(words []string) bool {
	var capped, significant int
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsDigit(r) || !unicode.IsLetter(r) {
			continue
		}
		significant++
		if unicode.IsUpper(r) {
			capped++
		}
	}
	if significant == 0 {
		return false
	}
	return capped*2 > significant
}

// isLowercaseProse reports whether the text starts lowercase without being
// a recognized lettered scheme such as "a) Item".
func isLowercaseProse(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	if !unicode.IsLower(r) {
		return false
	}
	rest := text[size:]
	return NumberingDepth(text) == 0 && !strings.HasPrefix(rest, ")") &&
		!strings.HasPrefix(rest, ".")
}

func clamp01(f float64) float64 {
	return clamp(f, 0, 1)
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
