package classify

// Config holds the classifier's signal weights and thresholds. Values are
// immutable once the classifier is constructed; build a new classifier to
// retune.
type Config struct {
	// PatternWeight scales the pattern-library signal.
	// Default: 0.40
	PatternWeight float64

	// StructureWeight scales the numbering-depth signal.
	// Default: 0.25
	StructureWeight float64

	// FontWeight scales the size-rank signal.
	// Default: 0.20
	FontWeight float64

	// ContextWeight scales the shape signal (label-like vs body prose).
	// Default: 0.15
	ContextWeight float64

	// AcceptThreshold is the minimum combined score for a line to become a
	// heading candidate. Default: 0.30
	AcceptThreshold float64

	// VetoScore rejects a line outright when its context score is at or
	// below this value, regardless of other signals. Default: -0.7
	VetoScore float64

	// MinRunes and MaxRunes bound the length of classifiable text.
	// Defaults: 3 and 200.
	MinRunes int
	MaxRunes int

	// PlainEmphasisFactor attenuates the font signal for large text that
	// carries no bold/italic/caps emphasis. Default: 0.7
	PlainEmphasisFactor float64
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		PatternWeight:       0.40,
		StructureWeight:     0.25,
		FontWeight:          0.20,
		ContextWeight:       0.15,
		AcceptThreshold:     0.30,
		VetoScore:           -0.7,
		MinRunes:            3,
		MaxRunes:            200,
		PlainEmphasisFactor: 0.7,
	}
}
