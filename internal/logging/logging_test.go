package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "sortbench.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("measured %s in %s", "Merge", "1.2ms")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "measured Merge in 1.2ms") {
		t.Fatalf("expected LogEvent content, got: %s", data)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init with empty path: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})
	// No file configured: Close is a no-op.
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
