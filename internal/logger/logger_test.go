package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelsFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, nil)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Error("messages below min level should be discarded")
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Error("messages at or above min level should be written")
	}
}

func TestStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Warn("Study Day not found", Fields{"term": "Fall 2025", "label": "Study Day"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "WARN" {
		t.Errorf("level = %q, want WARN", entry.Level)
	}
	if entry.Message != "Study Day not found" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.Fields["term"] != "Fall 2025" {
		t.Errorf("fields not preserved: %v", entry.Fields)
	}
	if entry.Timestamp == "" {
		t.Error("timestamp should be set")
	}
}

func TestErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Error("fetch failed", nil, errTest)

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Error != "boom" {
		t.Errorf("error field = %q, want boom", entry.Error)
	}
}

type testErr struct{}

func (testErr) Error() string { return "boom" }

var errTest = testErr{}
