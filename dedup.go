package docquiz

import "strings"

// QuestionDedup filters out questions whose text repeats an already
// accepted question. Comparison is on normalized text, so casing and
// punctuation differences still count as duplicates.
type QuestionDedup struct {
	seen map[string]bool
}

// NewQuestionDedup creates an empty deduplicator.
func NewQuestionDedup() *QuestionDedup {
	return &QuestionDedup{seen: make(map[string]bool)}
}

// IsDuplicate reports whether q repeats an accepted question, recording it
// as accepted otherwise.
func (qd *QuestionDedup) IsDuplicate(q QuizQuestion) bool {
	key := normalizeQuestion(q.Question)
	if qd.seen[key] {
		return true
	}
	qd.seen[key] = true
	return false
}

func normalizeQuestion(text string) string {
	text = strings.ToLower(text)
	var sb strings.Builder
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
