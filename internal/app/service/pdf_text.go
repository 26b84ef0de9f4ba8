package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFTextReader pulls the plain text out of an uploaded source document.
// Only the first page matters: birth registration and NID printouts carry
// all the applicant fields there.
type PDFTextReader interface {
	FirstPageText(data []byte) (string, error)
}

type pdfTextReader struct{}

func NewPDFTextReader() PDFTextReader {
	return &pdfTextReader{}
}

func (p *pdfTextReader) FirstPageText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	if reader.NumPage() < 1 {
		return "", fmt.Errorf("PDF has no pages")
	}

	page := reader.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("PDF first page is empty")
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return text, nil
}
