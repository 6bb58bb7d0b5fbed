package docquiz

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// RunLogger writes the diagnostics log of a single pipeline run to a file.
// A nil *RunLogger is valid and discards everything.
type RunLogger struct {
	file *os.File
	mu   sync.Mutex
}

// NewRunLogger creates a log file for one pipeline run under dir.
func NewRunLogger(dir, filename string, numQuestions int) (*RunLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run log directory: %w", err)
	}

	name := fmt.Sprintf("run-%s.log", time.Now().Format("20060102-150405.000"))
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	rl := &RunLogger{file: file}
	rl.Logf("=== Quiz Pipeline Run ===\n")
	rl.Logf("File: %s\n", filename)
	rl.Logf("Requested questions: %d\n", numQuestions)
	rl.Logf("Started: %s\n\n", time.Now().Format(time.RFC3339))
	return rl, nil
}

// Logf writes a formatted entry with a timestamp.
func (rl *RunLogger) Logf(format string, args ...interface{}) {
	if rl == nil {
		return
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.file == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(rl.file, "[%s] %s", timestamp, fmt.Sprintf(format, args...))
	rl.file.Sync()
}

// LogStage records the outcome of one pipeline stage.
func (rl *RunLogger) LogStage(stage string, err error) {
	if err != nil {
		rl.Logf("%s: FAILED - %v\n", stage, err)
		return
	}
	rl.Logf("%s: ok\n", stage)
}

// Close finalizes and closes the log file.
func (rl *RunLogger) Close() error {
	if rl == nil {
		return nil
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.file == nil {
		return nil
	}

	fmt.Fprintf(rl.file, "[%s] run complete: %s\n", time.Now().Format("15:04:05.000"), time.Now().Format(time.RFC3339))
	f := rl.file
	rl.file = nil
	return f.Close()
}
