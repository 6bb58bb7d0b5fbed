package docquiz

import (
	"fmt"
	"strings"
)

// CheckQuestion validates the structure of a generated question. The model
// occasionally returns an out-of-range answer index, duplicated options or
// empty text; such questions are discarded rather than shown to the user.
func CheckQuestion(q QuizQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q has %d options, need at least 2", q.Question, len(q.Options))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("question %q has an empty option", q.Question)
		}
		if seen[opt] {
			return fmt.Errorf("question %q has duplicate option %q", q.Question, opt)
		}
		seen[opt] = true
	}

	if !seen[q.CorrectAnswer] {
		return fmt.Errorf("question %q: correct answer %q is not among the options", q.Question, q.CorrectAnswer)
	}
	return nil
}
