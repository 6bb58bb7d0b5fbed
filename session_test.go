package docquiz

import (
	"reflect"
	"testing"
)

func threeQuestions() []QuizQuestion {
	return []QuizQuestion{
		{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: "a"},
		{Question: "Q2", Options: []string{"c", "d"}, CorrectAnswer: "d"},
		{Question: "Q3", Options: []string{"e", "f"}, CorrectAnswer: "e"},
	}
}

func TestNewQuizSession(t *testing.T) {
	s := NewQuizSession(threeQuestions(), 45)

	if s.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex)
	}
	if s.TimerSeconds != 45 {
		t.Errorf("TimerSeconds = %d, want 45", s.TimerSeconds)
	}
	if want := []string{"", "", ""}; !reflect.DeepEqual(s.UserAnswers, want) {
		t.Errorf("UserAnswers = %v, want %v", s.UserAnswers, want)
	}
}

func TestSessionNavigationGuards(t *testing.T) {
	s := NewQuizSession(threeQuestions(), 30)

	s.Prev()
	if s.CurrentIndex != 0 {
		t.Errorf("Prev at first question moved to %d", s.CurrentIndex)
	}

	s.Next()
	s.Next()
	if s.CurrentIndex != 2 {
		t.Fatalf("CurrentIndex = %d, want 2", s.CurrentIndex)
	}

	s.Next()
	if s.CurrentIndex != 2 {
		t.Errorf("Next at last question moved to %d", s.CurrentIndex)
	}
}

func TestSessionSelectAnswerOverwrites(t *testing.T) {
	s := NewQuizSession(threeQuestions(), 30)
	s.Next()

	s.SelectAnswer("c")
	s.SelectAnswer("d")

	if want := []string{"", "d", ""}; !reflect.DeepEqual(s.UserAnswers, want) {
		t.Errorf("UserAnswers = %v, want %v", s.UserAnswers, want)
	}
}

func TestSessionJumpTo(t *testing.T) {
	s := NewQuizSession(threeQuestions(), 30)

	s.JumpTo(2)
	if s.CurrentIndex != 2 {
		t.Errorf("JumpTo(2): CurrentIndex = %d", s.CurrentIndex)
	}

	s.JumpTo(-1)
	s.JumpTo(3)
	if s.CurrentIndex != 2 {
		t.Errorf("out-of-range jump moved CurrentIndex to %d", s.CurrentIndex)
	}
}

func TestSessionScore(t *testing.T) {
	s := NewQuizSession(threeQuestions(), 30)
	s.SelectAnswer("a") // correct
	s.Next()
	s.SelectAnswer("c") // wrong
	// Q3 left unanswered; its correct answer "e" must not count as a match.

	score := s.Score()
	if score.Correct != 1 || score.Total != 3 {
		t.Errorf("score = %d/%d, want 1/3", score.Correct, score.Total)
	}
	if want := []bool{true, false, false}; !reflect.DeepEqual(score.PerQuestion, want) {
		t.Errorf("PerQuestion = %v, want %v", score.PerQuestion, want)
	}
}

func TestScorePercent(t *testing.T) {
	if p := (Score{Correct: 1, Total: 3}).Percent(); p < 33.3 || p > 33.4 {
		t.Errorf("Percent() = %f", p)
	}
	if p := (Score{}).Percent(); p != 0 {
		t.Errorf("Percent() on empty score = %f, want 0", p)
	}
}

func TestSessionAnswered(t *testing.T) {
	s := NewQuizSession(threeQuestions(), 30)
	if s.Answered() != 0 {
		t.Errorf("Answered() = %d, want 0", s.Answered())
	}
	s.SelectAnswer("a")
	s.Next()
	s.SelectAnswer("d")
	if s.Answered() != 2 {
		t.Errorf("Answered() = %d, want 2", s.Answered())
	}
}
