// Package model defines the shared value types that flow through the
// outline extraction pipeline: text runs supplied by a collector, assembled
// lines, and the final title/outline result.
//
// All types in this package are plain values. They are produced once per
// document, never mutated after construction, and never shared between
// concurrent document extractions.
//
// # Page numbering
//
// Pages are numbered starting at [FirstPage] (1). Every Page field in this
// package, in collector input, and in serialized output uses this
// convention, so writers never need to renumber.
package model
