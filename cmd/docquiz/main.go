package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"docquiz"

	"github.com/joho/godotenv"
)

const answerLabels = "ABCDEFGH"

func main() {
	var (
		filePath     = flag.String("file", "", "Document to build the quiz from (.pdf, .doc or .docx, required)")
		numQuestions = flag.Int("questions", 5, "Number of questions to generate")
		timerSeconds = flag.Int("timer", 30, "Per-question timer duration in seconds")
		model        = flag.String("model", "", "OpenAI model (default: GPT-4o)")
		runLogDir    = flag.String("runlog", "", "Directory for pipeline run logs (empty disables)")
		verbose      = flag.Bool("verbose", false, "Enable verbose debugging output")
	)
	flag.Parse()

	docquiz.SetVerbose(*verbose)
	_ = godotenv.Load()

	if *filePath == "" {
		log.Fatal("A document is required. Use -file.")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	extractor := docquiz.NewTextExtractor(docquiz.NewPDFDecoder(), docquiz.NewWordDecoder())
	producer := docquiz.NewOpenAIProducer(apiKey, *model)
	controller := docquiz.NewController(extractor, producer)
	if *runLogDir != "" {
		controller.SetRunLogDir(*runLogDir)
	}

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *filePath, err)
	}
	defer file.Close()

	fmt.Printf("📄 Building a quiz from: %s\n", *filePath)
	fmt.Println("⏳ Extracting text and generating questions... (this may take a moment)")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := controller.Submit(ctx, file, filepath.Base(*filePath), *numQuestions, *timerSeconds); err != nil {
		log.Fatalf("Quiz generation failed: %v", err)
	}

	play(controller)
}

// play walks the workflow until the results have been shown.
func play(c *docquiz.Controller) {
	scanner := bufio.NewScanner(os.Stdin)
	session := c.Session()

	fmt.Printf("📝 %d questions, %d seconds each\n\n", len(session.Questions), session.TimerSeconds)

	for {
		switch c.Phase() {
		case docquiz.PhaseQuiz:
			quizStep(c, scanner)
		case docquiz.PhaseReview:
			reviewStep(c, scanner)
		case docquiz.PhaseResults:
			showResults(c)
			return
		default:
			return
		}
	}
}

func quizStep(c *docquiz.Controller, scanner *bufio.Scanner) {
	session := c.Session()
	q := session.Current()

	fmt.Printf("Question %d/%d:\n%s\n\n", session.CurrentIndex+1, len(session.Questions), q.Question)
	for i, option := range q.Options {
		marker := " "
		if session.UserAnswers[session.CurrentIndex] == option {
			marker = "*"
		}
		fmt.Printf("%s %c) %s\n", marker, answerLabels[i], option)
	}

	fmt.Printf("\nAnswer (%c-%c), n=next, p=prev, f=finish: ", answerLabels[0], answerLabels[len(q.Options)-1])
	if !scanner.Scan() {
		c.Finish()
		c.FinalSubmit()
		return
	}
	input := strings.ToUpper(strings.TrimSpace(scanner.Text()))

	switch input {
	case "N":
		c.Next()
	case "P":
		c.Prev()
	case "F":
		c.Finish()
	default:
		idx := -1
		if len(input) == 1 {
			idx = strings.Index(answerLabels[:len(q.Options)], input)
		}
		if idx < 0 {
			fmt.Println("Please enter a valid option or command")
			break
		}
		c.SelectAnswer(q.Options[idx])
		c.Next()
	}
	fmt.Println()
}

func reviewStep(c *docquiz.Controller, scanner *bufio.Scanner) {
	session := c.Session()

	fmt.Printf("📋 Review (%d of %d answered):\n", session.Answered(), len(session.Questions))
	for i, q := range session.Questions {
		answer := session.UserAnswers[i]
		if answer == "" {
			answer = "(unanswered)"
		}
		fmt.Printf("%3d. %s\n     → %s\n", i+1, q.Question, answer)
	}

	fmt.Print("\nQuestion number to revisit, or s=submit: ")
	if !scanner.Scan() {
		c.FinalSubmit()
		return
	}
	input := strings.ToLower(strings.TrimSpace(scanner.Text()))

	if input == "s" {
		c.FinalSubmit()
		return
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(session.Questions) {
		fmt.Println("Please enter a question number or s")
		return
	}
	c.JumpToQuestion(n - 1)
	fmt.Println()
}

func showResults(c *docquiz.Controller) {
	session := c.Session()
	score := session.Score()

	fmt.Println("\n🎉 Quiz completed!")
	fmt.Println()
	for i, q := range session.Questions {
		if score.PerQuestion[i] {
			fmt.Printf("✅ %d. %s\n", i+1, q.Question)
			continue
		}
		answer := session.UserAnswers[i]
		if answer == "" {
			answer = "(unanswered)"
		}
		fmt.Printf("❌ %d. %s\n     Your answer: %s\n     Correct answer: %s\n", i+1, q.Question, answer, q.CorrectAnswer)
	}

	fmt.Printf("\n🏆 Final score: %d/%d (%.1f%%)\n", score.Correct, score.Total, score.Percent())
	switch {
	case score.Percent() >= 80:
		fmt.Println("🌟 Excellent work!")
	case score.Percent() >= 60:
		fmt.Println("👍 Good job!")
	default:
		fmt.Println("📚 Keep studying!")
	}
}
