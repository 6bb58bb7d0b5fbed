package docquiz

import "context"

// QuizProducer turns validated source text into a fixed number of
// multiple-choice questions. Implementations must return either the
// complete list or an error; the workflow never accepts a partial result.
type QuizProducer interface {
	Generate(ctx context.Context, text string, numQuestions int) ([]QuizQuestion, error)
}
