package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Rule is one entry in the pattern library: a textual matcher carrying the
// level it implies and a fixed confidence weight.
type Rule struct {
	re     *regexp.Regexp
	Level  model.HeadingLevel
	Weight float64
}

// Match reports whether the rule matches the text.
func (r Rule) Match(text string) bool {
	return r.re.MatchString(text)
}

// PatternLibrary is four ordered rule lists, one per heading level.
// Within each list, longer/more specific patterns come before generic
// ones; evaluation walks H1 through H4 and the first matching rule wins,
// short-circuiting all further pattern evaluation for that line.
type PatternLibrary struct {
	levels [model.MaxLevel][]Rule
}

// NewPatternLibrary builds the default library. The rule set encodes, in
// priority order per level: explicit hierarchical numbering depth,
// lettered/roman/parenthetical schemes, fixed section vocabulary, and
// generic structural cues. Vocabulary matching is case-insensitive;
// ALL-CAPS detection is deliberately case-sensitive.
func NewPatternLibrary() *PatternLibrary {
	lib := &PatternLibrary{}

	lib.levels[model.LevelH1-1] = []Rule{
		{re: regexp.MustCompile(`^(?i)(chapter|section|part)\s+\d+\b`), Level: model.LevelH1, Weight: 0.95},
		{re: regexp.MustCompile(`^\d+\.\s+\S`), Level: model.LevelH1, Weight: 0.90},
		{re: regexp.MustCompile(`^(?i)appendix\s+([A-Z]|\d+)\b`), Level: model.LevelH1, Weight: 0.90},
		{re: regexp.MustCompile(`^(?i)(table\s+of\s+contents|revision\s+history|document\s+history|executive\s+summary)\b`), Level: model.LevelH1, Weight: 0.90},
		{re: regexp.MustCompile(`^(?i)(introduction|overview|summary|conclusion|abstract|preface|acknowledgements?|references|bibliography)\b`), Level: model.LevelH1, Weight: 0.85},
		{re: regexp.MustCompile(`^[A-Z][A-Z0-9\s,:&\-]{3,}$`), Level: model.LevelH1, Weight: 0.60},
	}

	lib.levels[model.LevelH2-1] = []Rule{
		{re: regexp.MustCompile(`^\d+\.\d+\.?\s+\S`), Level: model.LevelH2, Weight: 0.90},
		{re: regexp.MustCompile(`^(?i)(background|methodology|results|discussion|analysis|related\s+work)\b`), Level: model.LevelH2, Weight: 0.80},
		{re: regexp.MustCompile(`^(?i)(phase|step|stage)\s+([IVXLCDM]+|\d+)\b`), Level: model.LevelH2, Weight: 0.75},
		{re: regexp.MustCompile(`^[A-Z][A-Za-z0-9\s\-]{2,40}:$`), Level: model.LevelH2, Weight: 0.60},
	}

	lib.levels[model.LevelH3-1] = []Rule{
		{re: regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+\S`), Level: model.LevelH3, Weight: 0.90},
		{re: regexp.MustCompile(`^[a-z]\)\s+\S`), Level: model.LevelH3, Weight: 0.80},
		{re: regexp.MustCompile(`^[A-Z]\.\s+\S`), Level: model.LevelH3, Weight: 0.75},
		{re: regexp.MustCompile(`^(?i)(timeline|objectives|requirements|specifications)\b`), Level: model.LevelH3, Weight: 0.60},
	}

	lib.levels[model.LevelH4-1] = []Rule{
		{re: regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\.?\s+\S`), Level: model.LevelH4, Weight: 0.90},
		{re: regexp.MustCompile(`^\([a-z]\)\s+\S`), Level: model.LevelH4, Weight: 0.80},
		{re: regexp.MustCompile(`^[a-z]\.\d+\s+\S`), Level: model.LevelH4, Weight: 0.75},
		{re: regexp.MustCompile(`^[IVXLCDM]+\.\s+\S`), Level: model.LevelH4, Weight: 0.70},
	}

	return lib
}

// Match returns the first matching rule in H1-through-H4 order.
func (p *PatternLibrary) Match(text string) (Rule, bool) {
	for _, rules := range p.levels {
		for _, rule := range rules {
			if rule.Match(text) {
				return rule, true
			}
		}
	}
	return Rule{}, false
}

// numberingRe captures a leading hierarchical section number: either a
// multi-part number like "2.1" or "2.1.3", or a single number that must
// carry its dot ("2. Scope"), so bare years and quantities do not count.
var numberingRe = regexp.MustCompile(`^(\d+(?:\.\d+){1,3}|\d+\.)\.?\s+\S`)

// NumberingDepth returns the depth of a leading hierarchical section
// number: "1. Intro" is 1, "1.2 Scope" is 2, "1.2.3 Detail" is 3. Returns
// 0 when the text carries no structural numbering.
func NumberingDepth(text string) int {
	m := numberingRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return strings.Count(strings.TrimSuffix(m[1], "."), ".") + 1
}

// bulletRe strips list markers the collector sometimes leaves on headings.
var bulletRe = regexp.MustCompile(`^[•*\-–]\s+`)

// dotLeaderRe strips trailing TOC dot leaders and their page numbers.
var dotLeaderRe = regexp.MustCompile(`\s*\.{2,}\s*\d*\s*$`)

// numberedLowerRe finds a lowercase first letter after a numeric prefix.
var numberedLowerRe = regexp.MustCompile(`^(\d+(?:\.\d+)*\.?\s+)([a-z])`)

// CleanHeadingText normalizes heading text for output: collapses
// whitespace, strips leading bullet markers and trailing dot leaders, and
// capitalizes the first letter after a numeric prefix.
func CleanHeadingText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = bulletRe.ReplaceAllString(text, "")
	text = dotLeaderRe.ReplaceAllString(text, "")
	if NumberingDepth(text) > 0 {
		text = numberedLowerRe.ReplaceAllStringFunc(text, func(m string) string {
			sub := numberedLowerRe.FindStringSubmatch(m)
			return sub[1] + strings.ToUpper(sub[2])
		})
	}
	return strings.TrimSpace(text)
}
