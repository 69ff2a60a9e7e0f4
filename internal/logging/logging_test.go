package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLoggerAppendsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	logger, err := NewFileLogger(path, false)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Infow("START", "command", "convert")
	logger.Infow("END")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "START") || !strings.Contains(content, "END") {
		t.Errorf("expected START and END records, got %q", content)
	}
	// comma-delimited records
	if !strings.Contains(content, ",INFO,") {
		t.Errorf("expected comma-delimited level field, got %q", content)
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	logger := NewNop()
	logger.Infow("nothing to see")
	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
