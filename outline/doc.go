// Package outline turns classified heading candidates into the final
// document result.
//
// [Normalizer] repairs the candidate sequence into a legal nesting chain:
// duplicates collapse, page artifacts drop, the first entry is promoted to
// H1, and no entry may nest more than one step deeper than the level in
// effect before it. Widening to a shallower level is always permitted.
//
// [TitleExtractor] chooses the document title independently of the heading
// pipeline, walking a fixed priority chain: PDF metadata, the most
// prominent first-page line, the first H1, then the empty string - which
// is a valid outcome, not a failure.
//
// [Engine] wires the full pipeline: assemble, profile, classify,
// normalize, title.
package outline
