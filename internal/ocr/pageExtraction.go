package ocr

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajinkya1806/Data-Diggers/internal/config"
	"github.com/dslipak/pdf"
)

// extractPDFFirstPage returns the text of the first readable page. The
// pipeline is single-page; later pages of a scanned letter only hold
// disclaimers.
func (r *Reader) extractPDFFirstPage(path string) (string, error) {
	r.logger.Debug("extractPDF", "attempting extraction", path)
	f, err := pdf.Open(path)
	if err != nil {
		r.logger.Error("failed opening of pdf file")
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := f.NumPage()
	r.logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			r.logger.Debug("extractPDF", "page value is null", i)
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			r.logger.Error("Error parsing page content", "Error", err)
			continue
		}
		return content, nil
	}
	return "", errors.New("no readable page in pdf")
}

// protectExtract guards against the parser hanging on a malformed page.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PDFPageTimeout):
		return "", errors.New("timeout")
	}
}
