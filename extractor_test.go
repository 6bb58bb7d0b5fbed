package docquiz

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakePDFDecoder serves canned page tokens and records whether it was used.
type fakePDFDecoder struct {
	pages    [][]string
	openErr  error
	pageErrs map[int]error
	opened   bool
}

func (f *fakePDFDecoder) Open(data []byte) (PDFDocument, error) {
	f.opened = true
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &fakePDFDocument{dec: f}, nil
}

type fakePDFDocument struct {
	dec *fakePDFDecoder
}

func (d *fakePDFDocument) PageCount() int { return len(d.dec.pages) }

func (d *fakePDFDocument) PageText(ctx context.Context, n int) ([]string, error) {
	if err := d.dec.pageErrs[n]; err != nil {
		return nil, err
	}
	return d.dec.pages[n-1], nil
}

// fakeWordDecoder returns canned text and records whether it was used.
type fakeWordDecoder struct {
	text   string
	err    error
	called bool
}

func (f *fakeWordDecoder) ExtractRawText(ctx context.Context, data []byte) (string, error) {
	f.called = true
	return f.text, f.err
}

// failReader fails the test if anything tries to read it.
type failReader struct {
	t *testing.T
}

func (r failReader) Read([]byte) (int, error) {
	r.t.Fatal("file was read before format routing")
	return 0, nil
}

// errReader always fails with a read error.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk error") }

func TestExtractRouting(t *testing.T) {
	tests := []struct {
		filename string
		wantPDF  bool
		wantWord bool
	}{
		{"notes.pdf", true, false},
		{"NOTES.PDF", true, false},
		{"report.doc", false, true},
		{"report.docx", false, true},
		{"Report.DocX", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			pdf := &fakePDFDecoder{pages: [][]string{{"hello"}}}
			word := &fakeWordDecoder{text: "hello"}
			te := NewTextExtractor(pdf, word)

			if _, err := te.Extract(context.Background(), strings.NewReader("data"), tt.filename); err != nil {
				t.Fatalf("Extract(%s) failed: %v", tt.filename, err)
			}
			if pdf.opened != tt.wantPDF {
				t.Errorf("PDF decoder used = %v, want %v", pdf.opened, tt.wantPDF)
			}
			if word.called != tt.wantWord {
				t.Errorf("Word decoder used = %v, want %v", word.called, tt.wantWord)
			}
		})
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	for _, filename := range []string{"notes.txt", "archive.zip", "noextension", "image.png"} {
		t.Run(filename, func(t *testing.T) {
			pdf := &fakePDFDecoder{}
			word := &fakeWordDecoder{}
			te := NewTextExtractor(pdf, word)

			// The reader fails the test if touched: unsupported formats
			// must be rejected before any read.
			_, err := te.Extract(context.Background(), failReader{t}, filename)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("Extract(%s) error = %v, want ErrUnsupportedFormat", filename, err)
			}
			if pdf.opened || word.called {
				t.Error("decoder was invoked for an unsupported format")
			}
		})
	}
}

func TestExtractReadFailure(t *testing.T) {
	pdf := &fakePDFDecoder{}
	te := NewTextExtractor(pdf, &fakeWordDecoder{})

	_, err := te.Extract(context.Background(), errReader{}, "broken.pdf")

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("error = %v, want *ReadError", err)
	}
	if pdf.opened {
		t.Error("decoder was invoked after a failed read")
	}
}

func TestExtractPDFJoinsPages(t *testing.T) {
	pdf := &fakePDFDecoder{pages: [][]string{
		{"The", "quick", "brown"},
		{"fox", "jumps"},
		{},
	}}
	te := NewTextExtractor(pdf, &fakeWordDecoder{})

	text, err := te.Extract(context.Background(), strings.NewReader("data"), "book.pdf")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := "The quick brown\n\nfox jumps\n\n"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestExtractPDFPageFailure(t *testing.T) {
	pdf := &fakePDFDecoder{
		pages:    [][]string{{"page", "one"}, {"page", "two"}, {"page", "three"}},
		pageErrs: map[int]error{2: errors.New("bad stream")},
	}
	te := NewTextExtractor(pdf, &fakeWordDecoder{})

	text, err := te.Extract(context.Background(), strings.NewReader("data"), "broken.pdf")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Format != "pdf" {
		t.Errorf("ParseError.Format = %q, want %q", parseErr.Format, "pdf")
	}
	if text != "" {
		t.Errorf("partial text returned on page failure: %q", text)
	}
}

func TestExtractPDFOpenFailure(t *testing.T) {
	pdf := &fakePDFDecoder{openErr: errors.New("encrypted")}
	te := NewTextExtractor(pdf, &fakeWordDecoder{})

	_, err := te.Extract(context.Background(), strings.NewReader("data"), "locked.pdf")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestExtractWord(t *testing.T) {
	word := &fakeWordDecoder{text: "document body text"}
	te := NewTextExtractor(&fakePDFDecoder{}, word)

	text, err := te.Extract(context.Background(), strings.NewReader("data"), "essay.docx")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "document body text" {
		t.Errorf("text = %q", text)
	}
}

func TestExtractWordFailure(t *testing.T) {
	word := &fakeWordDecoder{err: errors.New("not a zip archive")}
	te := NewTextExtractor(&fakePDFDecoder{}, word)

	_, err := te.Extract(context.Background(), strings.NewReader("data"), "essay.doc")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Format != "word" {
		t.Errorf("ParseError.Format = %q, want %q", parseErr.Format, "word")
	}
}
