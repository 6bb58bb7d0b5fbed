package docquiz

// QuizSession holds the in-memory state of one quiz attempt: the generated
// questions, the user's answers, the current position and the per-question
// timer duration. Questions are never mutated after installation.
type QuizSession struct {
	Questions    []QuizQuestion `json:"questions"`
	UserAnswers  []string       `json:"user_answers"`
	CurrentIndex int            `json:"current_index"`
	TimerSeconds int            `json:"timer_seconds"`
}

// NewQuizSession builds a session over questions with every answer empty
// and the position at the first question.
func NewQuizSession(questions []QuizQuestion, timerSeconds int) *QuizSession {
	return &QuizSession{
		Questions:    questions,
		UserAnswers:  make([]string, len(questions)),
		TimerSeconds: timerSeconds,
	}
}

// Empty reports whether the session holds no questions.
func (s *QuizSession) Empty() bool { return len(s.Questions) == 0 }

// Current returns the question at the current position.
func (s *QuizSession) Current() QuizQuestion { return s.Questions[s.CurrentIndex] }

// SelectAnswer records the answer for the current question, overwriting any
// previous answer. Answers of other questions are untouched.
func (s *QuizSession) SelectAnswer(answer string) {
	if s.Empty() {
		return
	}
	s.UserAnswers[s.CurrentIndex] = answer
}

// Next advances to the following question. At the last question it is a
// no-op.
func (s *QuizSession) Next() {
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
	}
}

// Prev moves back one question. At the first question it is a no-op.
func (s *QuizSession) Prev() {
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
}

// JumpTo moves to question i. Out-of-range indexes are ignored.
func (s *QuizSession) JumpTo(i int) {
	if i >= 0 && i < len(s.Questions) {
		s.CurrentIndex = i
	}
}

// Answered returns how many questions have a recorded answer.
func (s *QuizSession) Answered() int {
	n := 0
	for _, a := range s.UserAnswers {
		if a != "" {
			n++
		}
	}
	return n
}

// Score tallies the user's answers against the correct ones.
func (s *QuizSession) Score() Score {
	score := Score{
		Total:       len(s.Questions),
		PerQuestion: make([]bool, len(s.Questions)),
	}
	for i, q := range s.Questions {
		if s.UserAnswers[i] != "" && s.UserAnswers[i] == q.CorrectAnswer {
			score.Correct++
			score.PerQuestion[i] = true
		}
	}
	return score
}
