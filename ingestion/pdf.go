package ingestion

import (
	"os"

	pdf "github.com/ledongthuc/pdf"
)

// ExtractPages returns the per-page text of the document at path. Files
// without a %PDF header are read whole as a single pseudo-page so plain-text
// fixtures keep working offline. A missing file surfaces as the read error.
func ExtractPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isPDF(data) {
		return []string{string(data)}, nil
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// unreadable page, keep the page slot so numbering stays stable
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func isPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
