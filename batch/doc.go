// Package batch processes directories of PDFs into outline JSON files.
//
// [Runner] scans an input directory for *.pdf, extracts each document's
// outline with bounded concurrency, and writes <stem>.json next to the
// configured output directory. A document that fails still produces a
// valid empty result file; one bad PDF never aborts the batch.
//
// [Watcher] extends the runner with filesystem watching, processing PDFs
// as they appear.
package batch
