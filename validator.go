package docquiz

import "strings"

// MinSourceLength is the minimum number of trimmed characters the extracted
// text must have to serve as a quiz source. Scanned PDFs without a text
// layer extract to almost nothing; failing here gives the user an
// actionable message instead of a low-quality quiz downstream.
const MinSourceLength = 100

// ValidateSource rejects extracted text that is too short to generate a
// meaningful quiz from. The returned TooShortError carries the trimmed
// length and the start of the trimmed text as a diagnostic snippet.
func ValidateSource(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= MinSourceLength {
		return nil
	}

	snippet := trimmed
	if len(snippet) > MinSourceLength {
		snippet = snippet[:MinSourceLength]
	}
	return &TooShortError{Length: len(trimmed), Snippet: snippet}
}
