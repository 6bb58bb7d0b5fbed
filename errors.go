package docquiz

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when the uploaded file's extension is not
// pdf, doc or docx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadError wraps a byte-level failure while reading the uploaded file.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read file: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a decode failure of a structurally supported document.
type ParseError struct {
	Format string // "pdf" or "word"
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "pdf" {
		return fmt.Sprintf("failed to read PDF (corrupted, password-protected or unsupported content): %v", e.Err)
	}
	return fmt.Sprintf("failed to read Word document (corrupted or password-protected): %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TooShortError reports extracted text below the minimum quiz source
// length. Snippet holds the start of the trimmed text so the user can judge
// whether extraction worked at all.
type TooShortError struct {
	Length  int
	Snippet string
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("extracted text is too short for a quiz: %d characters (need at least %d). Extracted: %q",
		e.Length, MinSourceLength, e.Snippet)
}

// GenerationError reports that the question-producing call failed or
// returned no usable result.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate questions: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
