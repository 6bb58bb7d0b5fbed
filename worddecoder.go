package docquiz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

type wordDecoder struct{}

// NewWordDecoder returns the real Word text extraction capability.
func NewWordDecoder() WordDecoder { return wordDecoder{} }

func (wordDecoder) ExtractRawText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprint(&sb, item)
		}
	}
	return sb.String(), nil
}
