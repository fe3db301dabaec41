package model

// FirstPage is the page number of the first page of a document. All page
// numbers in this module are 1-based.
const FirstPage = 1

// TextRun is a single positioned piece of text produced by a collector.
// Runs are the only input contract the engine depends on; any PDF decoding
// library can be adapted to produce them.
type TextRun struct {
	// Text is the raw run content, not yet normalized.
	Text string

	// FontName is the PDF font name, e.g. "Helvetica-Bold".
	FontName string

	// FontSize is the font size in points.
	FontSize float64

	// Bold and Italic are weight/style flags, usually inferred from the
	// font name by the collector.
	Bold   bool
	Italic bool

	// Page is the 1-based page number the run appears on.
	Page int

	// X and Y are the run's position in PDF coordinates (origin bottom-left,
	// Y increasing upward).
	X, Y float64
}

// Line is a logical line of text assembled from one or more runs that share
// a page and baseline. Lines are built by layout.Assembler and consumed
// read-only by every later stage.
type Line struct {
	// Text is the trimmed, whitespace-normalized line content.
	Text string

	// Page is the 1-based page number.
	Page int

	// FontSize is the dominant run size on the line. When run sizes tie by
	// frequency the larger size wins.
	FontSize float64

	// Bold and Italic are true when the majority of the line's text carries
	// the flag.
	Bold   bool
	Italic bool

	// Order is the document-wide sequence index, strictly increasing in
	// reading order (page ascending, then top to bottom).
	Order int

	// X and Y are the position of the line's leftmost run.
	X, Y float64
}
