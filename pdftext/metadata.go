package pdftext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DocumentInfo is the document-level metadata read without parsing page
// content.
type DocumentInfo struct {
	// Title is the Info-dictionary title, possibly empty.
	Title string

	// Pages is the document's total page count, before any cap.
	Pages int
}

// ReadInfo reads the page count and Info-dictionary title of a PDF.
// A missing or unreadable Info dictionary yields an empty title, not an
// error; only a structurally broken file fails.
func ReadInfo(path string) (DocumentInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return DocumentInfo{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	pages, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return DocumentInfo{}, fmt.Errorf("page count for %s: %w", path, err)
	}

	info := DocumentInfo{Pages: pages}
	info.Title = readInfoTitle(path)
	return info, nil
}

// readInfoTitle pulls /Info /Title out of the trailer. Any failure here
// just means no metadata title; the title extractor has fallbacks.
func readInfoTitle(path string) (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	v := reader.Trailer().Key("Info").Key("Title")
	if v.IsNull() {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

// FileStem returns the base filename without its extension, the form the
// title extractor compares metadata titles against.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
