package docquiz

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Controller drives one quiz workflow through its phases:
//
//	setup -> generating -> quiz -> review -> results -> setup
//
// A failed pipeline run returns to setup with a displayable error message
// and leaves the session untouched; the session is only replaced after a
// fully successful extract-validate-generate run. Events that do not apply
// to the current phase are ignored.
//
// All methods are meant to be called from a single goroutine; the
// controller does no locking of its own.
type Controller struct {
	extractor *TextExtractor
	producer  QuizProducer
	runLogDir string

	phase   Phase
	session *QuizSession
	errMsg  string
}

// NewController creates a controller in the setup phase with an empty
// session.
func NewController(extractor *TextExtractor, producer QuizProducer) *Controller {
	return &Controller{
		extractor: extractor,
		producer:  producer,
		phase:     PhaseSetup,
		session:   &QuizSession{},
	}
}

// SetRunLogDir enables per-run diagnostics log files under dir.
func (c *Controller) SetRunLogDir(dir string) { c.runLogDir = dir }

// Phase returns the active workflow phase.
func (c *Controller) Phase() Phase { return c.phase }

// Session returns the current quiz session. It is empty until a submission
// succeeds and after a retry.
func (c *Controller) Session() *QuizSession { return c.session }

// ErrorMessage returns the message of the last failed pipeline run, or ""
// if the last run succeeded or none ran yet.
func (c *Controller) ErrorMessage() string { return c.errMsg }

// Submit runs one pipeline attempt: extract, validate, generate. On success
// the new session is installed and the quiz begins at the first question.
// On failure the controller returns to setup with the failure's message.
func (c *Controller) Submit(ctx context.Context, file io.Reader, filename string, numQuestions, timerSeconds int) error {
	if c.phase != PhaseSetup {
		return fmt.Errorf("submission is only allowed during setup (current phase: %s)", c.phase)
	}
	if numQuestions <= 0 {
		return fmt.Errorf("number of questions must be positive, got %d", numQuestions)
	}
	if timerSeconds <= 0 {
		return fmt.Errorf("timer duration must be positive, got %d", timerSeconds)
	}

	c.errMsg = ""
	c.phase = PhaseGenerating

	questions, err := c.runPipeline(ctx, file, filename, numQuestions)
	if err != nil {
		log.Printf("Quiz pipeline failed for %s: %v", filename, err)
		c.errMsg = err.Error()
		c.phase = PhaseSetup
		return err
	}

	c.session = NewQuizSession(questions, timerSeconds)
	c.phase = PhaseQuiz
	VerboseLog("Quiz ready: %d questions from %s", len(questions), filename)
	return nil
}

// runPipeline executes the stages in strict sequence. The extracted text is
// discarded once generation succeeds or the attempt fails.
func (c *Controller) runPipeline(ctx context.Context, file io.Reader, filename string, numQuestions int) ([]QuizQuestion, error) {
	rl := c.newRunLogger(filename, numQuestions)
	defer rl.Close()

	text, err := c.extractor.Extract(ctx, file, filename)
	if err != nil {
		rl.LogStage("extract", err)
		return nil, err
	}
	rl.Logf("extract: ok, %d characters\n", len(text))

	if err := ValidateSource(text); err != nil {
		rl.LogStage("validate", err)
		return nil, err
	}
	rl.LogStage("validate", nil)

	questions, err := c.producer.Generate(ctx, text, numQuestions)
	if err != nil {
		rl.LogStage("generate", err)
		return nil, err
	}
	if len(questions) != numQuestions {
		err := &GenerationError{Err: fmt.Errorf("expected %d questions, got %d", numQuestions, len(questions))}
		rl.LogStage("generate", err)
		return nil, err
	}
	rl.Logf("generate: ok, %d questions\n", len(questions))

	return questions, nil
}

func (c *Controller) newRunLogger(filename string, numQuestions int) *RunLogger {
	if c.runLogDir == "" {
		return nil
	}
	rl, err := NewRunLogger(c.runLogDir, filename, numQuestions)
	if err != nil {
		log.Printf("Run log disabled: %v", err)
		return nil
	}
	return rl
}

// SelectAnswer records the answer for the current question. Only valid
// during the quiz phase.
func (c *Controller) SelectAnswer(answer string) {
	if c.phase != PhaseQuiz {
		return
	}
	c.session.SelectAnswer(answer)
}

// Next moves to the following question; at the last question it is a no-op.
func (c *Controller) Next() {
	if c.phase == PhaseQuiz {
		c.session.Next()
	}
}

// Prev moves back one question; at the first question it is a no-op.
func (c *Controller) Prev() {
	if c.phase == PhaseQuiz {
		c.session.Prev()
	}
}

// Finish moves from answering to the review overview.
func (c *Controller) Finish() {
	if c.phase == PhaseQuiz {
		c.phase = PhaseReview
	}
}

// JumpToQuestion returns from review to the quiz at question i. An
// out-of-range index keeps the controller in review.
func (c *Controller) JumpToQuestion(i int) {
	if c.phase != PhaseReview {
		return
	}
	if i < 0 || i >= len(c.session.Questions) {
		return
	}
	c.session.JumpTo(i)
	c.phase = PhaseQuiz
}

// FinalSubmit locks in the answers and shows the results.
func (c *Controller) FinalSubmit() {
	if c.phase == PhaseReview {
		c.phase = PhaseResults
	}
}

// Retry discards the finished quiz and returns to setup for a new
// submission.
func (c *Controller) Retry() {
	if c.phase != PhaseResults {
		return
	}
	c.session = &QuizSession{}
	c.errMsg = ""
	c.phase = PhaseSetup
}
