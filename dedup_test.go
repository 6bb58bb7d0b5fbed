package docquiz

import "testing"

func TestQuestionDedup(t *testing.T) {
	dedup := NewQuestionDedup()

	first := QuizQuestion{Question: "What is the capital of France?"}
	if dedup.IsDuplicate(first) {
		t.Error("first question flagged as duplicate")
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact repeat", "What is the capital of France?", true},
		{"case and punctuation differ", "what is the capital of france", true},
		{"extra whitespace", "  What  is the capital\tof France? ", true},
		{"different question", "What is the capital of Spain?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedup.IsDuplicate(QuizQuestion{Question: tt.text})
			if got != tt.want {
				t.Errorf("IsDuplicate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"  spaced   out  ", "spaced out"},
		{"Route 66?", "route 66"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeQuestion(tt.in); got != tt.want {
			t.Errorf("normalizeQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
