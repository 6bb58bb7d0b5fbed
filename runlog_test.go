package docquiz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLoggerWritesStages(t *testing.T) {
	dir := t.TempDir()

	rl, err := NewRunLogger(dir, "notes.pdf", 5)
	if err != nil {
		t.Fatalf("NewRunLogger failed: %v", err)
	}
	rl.LogStage("extract", nil)
	rl.LogStage("validate", os.ErrInvalid)
	if err := rl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one log file, got %v (err %v)", entries, err)
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)

	for _, want := range []string{"notes.pdf", "Requested questions: 5", "extract: ok", "validate: FAILED"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestRunLoggerNilSafe(t *testing.T) {
	var rl *RunLogger
	rl.Logf("ignored %d\n", 1)
	rl.LogStage("extract", nil)
	if err := rl.Close(); err != nil {
		t.Errorf("Close on nil logger = %v", err)
	}
}

func TestRunLoggerAfterClose(t *testing.T) {
	rl, err := NewRunLogger(t.TempDir(), "a.pdf", 1)
	if err != nil {
		t.Fatalf("NewRunLogger failed: %v", err)
	}
	rl.Close()
	rl.Logf("must not panic\n")
	if err := rl.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
