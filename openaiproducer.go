package docquiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// maxBatches bounds how many completion calls one Generate may make before
// giving up on reaching the requested question count.
const maxBatches = 6

// OpenAIProducer generates questions from document text with chat
// completions. A forced tool call makes the model answer in structured
// JSON, so responses never need free-text parsing.
type OpenAIProducer struct {
	client *openai.Client
	model  string
}

// NewOpenAIProducer creates a producer using the given API key. An empty
// model selects GPT-4o.
func NewOpenAIProducer(apiKey, model string) *OpenAIProducer {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIProducer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Generate keeps requesting batches until numQuestions structurally valid,
// non-duplicate questions have been collected, then returns exactly that
// many.
func (p *OpenAIProducer) Generate(ctx context.Context, text string, numQuestions int) ([]QuizQuestion, error) {
	accepted := make([]QuizQuestion, 0, numQuestions)
	dedup := NewQuestionDedup()

	for batch := 0; len(accepted) < numQuestions; batch++ {
		if batch >= maxBatches {
			return nil, &GenerationError{Err: fmt.Errorf(
				"gave up after %d attempts with %d of %d usable questions", maxBatches, len(accepted), numQuestions)}
		}

		questions, err := p.requestBatch(ctx, text, numQuestions-len(accepted))
		if err != nil {
			return nil, &GenerationError{Err: err}
		}

		for _, q := range questions {
			if err := CheckQuestion(q); err != nil {
				VerboseLog("Discarding question: %v", err)
				continue
			}
			if dedup.IsDuplicate(q) {
				VerboseLog("Discarding duplicate question: %q", q.Question)
				continue
			}
			accepted = append(accepted, q)
			if len(accepted) == numQuestions {
				break
			}
		}

		VerboseLog("Batch %d: %d of %d questions accepted", batch+1, len(accepted), numQuestions)
	}

	return accepted, nil
}

func (p *OpenAIProducer) requestBatch(ctx context.Context, text string, count int) ([]QuizQuestion, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an expert quiz question writer. Generate high-quality multiple choice questions with exactly 4 options each, based strictly on the provided document text.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildQuizPrompt(text, count),
				},
			},
			Tools: []openai.Tool{
				{
					Type: openai.ToolTypeFunction,
					Function: &openai.FunctionDefinition{
						Name:        "submit_questions",
						Description: "Submit generated quiz questions",
						Parameters: map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"questions": map[string]interface{}{
									"type": "array",
									"items": map[string]interface{}{
										"type": "object",
										"properties": map[string]interface{}{
											"question": map[string]interface{}{
												"type":        "string",
												"description": "The question text",
											},
											"options": map[string]interface{}{
												"type": "array",
												"items": map[string]interface{}{
													"type": "string",
												},
												"description": "Array of 4 multiple choice options",
											},
											"correct_answer": map[string]interface{}{
												"type":        "integer",
												"description": "0-based index of the correct option",
											},
										},
										"required": []string{"question", "options", "correct_answer"},
									},
								},
							},
							"required": []string{"questions"},
						},
					},
				},
			},
			ToolChoice: openai.ToolChoice{
				Type: openai.ToolTypeFunction,
				Function: openai.ToolFunction{
					Name: "submit_questions",
				},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in model response")
	}
	choice := resp.Choices[0]
	if len(choice.Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("no tool calls in model response")
	}
	toolCall := choice.Message.ToolCalls[0]
	if toolCall.Function.Name != "submit_questions" {
		return nil, fmt.Errorf("unexpected tool call: %s", toolCall.Function.Name)
	}

	var toolArgs struct {
		Questions []struct {
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer int      `json:"correct_answer"`
		} `json:"questions"`
	}
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &toolArgs); err != nil {
		return nil, fmt.Errorf("failed to parse tool arguments: %w", err)
	}

	questions := make([]QuizQuestion, 0, len(toolArgs.Questions))
	for _, q := range toolArgs.Questions {
		// An out-of-range index leaves CorrectAnswer empty, which the
		// structural check rejects.
		correct := ""
		if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
			correct = q.Options[q.CorrectAnswer]
		}
		questions = append(questions, QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: correct,
		})
	}

	VerboseLog("Model returned %d questions", len(questions))
	return questions, nil
}

func buildQuizPrompt(text string, count int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Generate %d multiple choice questions based on the following document text.\n\n", count))
	sb.WriteString("Document text:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nRequirements:\n")
	sb.WriteString("- Each question must have exactly 4 multiple choice options\n")
	sb.WriteString("- Every question must be answerable from the document text alone\n")
	sb.WriteString("- Incorrect options should be plausible but clearly wrong\n")
	sb.WriteString("- Avoid questions where the answer is given away in the question text\n")
	sb.WriteString("- Use the submit_questions tool to return your questions\n")

	return sb.String()
}
