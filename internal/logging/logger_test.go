package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "skylark.log")

	logger, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Printf("[info] evaluated %s\n", "PRJ001")
	logger.Printf("[warn] stale reference: pilot %s", "Kiran")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], "[info] evaluated PRJ001") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf)

	logger.Printf("hello %d", 1)

	if !strings.HasSuffix(buf.String(), "hello 1\n") {
		t.Errorf("output = %q", buf.String())
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestLogger_Nil(t *testing.T) {
	var logger *Logger

	logger.Printf("dropped")
	if err := logger.Close(); err != nil {
		t.Errorf("Close on nil logger failed: %v", err)
	}
}
