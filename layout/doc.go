// Package layout turns raw collector text runs into the document-wide
// structures the classifier works from.
//
// [Assembler] groups runs into logical lines by page and baseline.
// [FontProfile] computes per-document font statistics so that font signals
// are relative (size rank) rather than absolute point sizes.
// [ArtifactDetector] identifies page furniture - page numbers, running
// headers and footers repeated across pages - so it can be excluded from
// the outline.
package layout
