package docquiz

// QuizQuestion is a single multiple-choice question. Immutable once
// produced; CorrectAnswer is always one of Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Phase is the workflow mode of a quiz controller. Exactly one phase is
// active at a time.
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseGenerating Phase = "generating"
	PhaseQuiz       Phase = "quiz"
	PhaseReview     Phase = "review"
	PhaseResults    Phase = "results"
)

// Score summarizes how a finished quiz went.
type Score struct {
	Correct     int    `json:"correct"`
	Total       int    `json:"total"`
	PerQuestion []bool `json:"per_question"` // true where the answer matched
}

// Percent returns the share of correct answers in 0..100.
func (sc Score) Percent() float64 {
	if sc.Total == 0 {
		return 0
	}
	return float64(sc.Correct) / float64(sc.Total) * 100
}
