package docquiz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
)

type pdfDecoder struct{}

// NewPDFDecoder returns the real PDF text extraction capability.
func NewPDFDecoder() PDFDecoder { return pdfDecoder{} }

func (pdfDecoder) Open(data []byte) (PDFDocument, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &pdfDocument{reader: r}, nil
}

type pdfDocument struct {
	reader *pdf.Reader
}

func (d *pdfDocument) PageCount() int { return d.reader.NumPage() }

func (d *pdfDocument) PageText(ctx context.Context, n int) (tokens []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The pdf package panics on malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = fmt.Errorf("decode failed: %v", r)
		}
	}()

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}
	for _, t := range page.Content().Text {
		if t.S != "" {
			tokens = append(tokens, t.S)
		}
	}
	return tokens, nil
}
