// Package classify decides, for each assembled line, whether it is a
// heading and at what level.
//
// Four independent signals are computed per line and combined by weighted
// sum: pattern (an ordered per-level rule library, first match wins),
// structure (hierarchical numbering depth), font (the line's size rank in
// the document's [layout.FontProfile]), and context (shape heuristics that
// separate labels from body prose). Pattern and structure weigh highest
// because they are least ambiguous; context acts as tie-breaker and veto -
// a numbered line that reads like a sentence is rejected even when its
// other signals are strong.
//
// Lines scoring below the acceptance threshold are discarded entirely, not
// emitted as low-confidence noise. Ties between adjacent levels break
// toward the shallower level, since over-nesting is visually worse than
// flattening.
//
// All tuning lives in an immutable [Config] injected at construction, so
// documents can be classified concurrently with different tuning and tests
// can pin deterministic thresholds.
package classify
