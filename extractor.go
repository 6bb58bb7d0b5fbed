package docquiz

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// PDFDecoder is the page-level text extraction capability the extractor
// needs from a PDF library.
type PDFDecoder interface {
	Open(data []byte) (PDFDocument, error)
}

// PDFDocument is an opened PDF. Pages are numbered starting at 1.
type PDFDocument interface {
	PageCount() int
	// PageText returns the text tokens of page n in reading order.
	PageText(ctx context.Context, n int) ([]string, error)
}

// WordDecoder extracts the raw text of a whole Word document in one call.
type WordDecoder interface {
	ExtractRawText(ctx context.Context, data []byte) (string, error)
}

// TextExtractor turns an uploaded document into plain text. The document
// format is chosen strictly by file-name extension, case-insensitive.
type TextExtractor struct {
	pdf  PDFDecoder
	word WordDecoder
}

// NewTextExtractor creates an extractor over the given decoder capabilities.
func NewTextExtractor(pdf PDFDecoder, word WordDecoder) *TextExtractor {
	return &TextExtractor{pdf: pdf, word: word}
}

// Extract reads the file once and decodes it into plain text. Unsupported
// extensions are rejected before any byte of the file is read. Each call
// re-reads the file; nothing is cached.
func (te *TextExtractor) Extract(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	var isPDF bool
	switch ext {
	case "pdf":
		isPDF = true
	case "doc", "docx":
		isPDF = false
	default:
		return "", fmt.Errorf("%w: %q (supported: pdf, doc, docx)", ErrUnsupportedFormat, ext)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", &ReadError{Err: err}
	}

	if isPDF {
		return te.extractPDF(ctx, data)
	}
	return te.extractWord(ctx, data)
}

// extractPDF decodes pages in order. Page text is the page's tokens joined
// by single spaces; pages are separated by a blank line. A failure on any
// page fails the whole extraction with no partial text.
func (te *TextExtractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	doc, err := te.pdf.Open(data)
	if err != nil {
		return "", &ParseError{Format: "pdf", Err: err}
	}

	pages := make([]string, 0, doc.PageCount())
	for n := 1; n <= doc.PageCount(); n++ {
		tokens, err := doc.PageText(ctx, n)
		if err != nil {
			return "", &ParseError{Format: "pdf", Err: fmt.Errorf("page %d: %w", n, err)}
		}
		pages = append(pages, strings.Join(tokens, " "))
	}

	VerboseLog("Extracted %d PDF pages", len(pages))
	return strings.Join(pages, "\n\n"), nil
}

func (te *TextExtractor) extractWord(ctx context.Context, data []byte) (string, error) {
	text, err := te.word.ExtractRawText(ctx, data)
	if err != nil {
		return "", &ParseError{Format: "word", Err: err}
	}
	return text, nil
}
