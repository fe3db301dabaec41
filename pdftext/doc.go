// Package pdftext extracts positioned text runs and document metadata
// from PDF files.
//
// [FileCollector] walks a PDF's content streams and yields one
// [model.TextRun] per text fragment, carrying the font name, size, and
// position the layout stage needs. Bold and italic flags are inferred
// from the font name, which is the only styling information the content
// stream reliably exposes.
//
// [ReadInfo] reads the page count and the Info-dictionary title without
// touching page content.
//
// Scanned image-only PDFs yield no runs and therefore an empty outline
// downstream; no OCR is attempted.
package pdftext
