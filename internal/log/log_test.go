package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelInfo)
	t.Cleanup(func() {
		SetOutput(&bytes.Buffer{})
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestInfoFormatsKeyValues(t *testing.T) {
	buf := capture(t)
	Info("tick complete", "bucket", "TODAY", "emitted", 2)
	line := buf.String()
	if !strings.Contains(line, "[INFO] tick complete") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "bucket=TODAY") || !strings.Contains(line, "emitted=2") {
		t.Fatalf("missing key-values: %q", line)
	}
}

func TestErrorIncludesErr(t *testing.T) {
	buf := capture(t)
	Error("tick failed", errors.New("boom"), "day", "2026-03-10")
	line := buf.String()
	if !strings.Contains(line, "[ERROR] tick failed") || !strings.Contains(line, "err=boom") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t)
	Debug("noise")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
	SetLevel(LevelDebug)
	Debug("noise")
	if !strings.Contains(buf.String(), "[DEBUG] noise") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}

func TestUnpairedValueIgnored(t *testing.T) {
	buf := capture(t)
	Info("odd", "key")
	line := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(line, "odd") {
		t.Fatalf("unexpected line: %q", line)
	}
}
