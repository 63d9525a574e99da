package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInit_FileLogging(t *testing.T) {
	tmpDir := t.TempDir()
	var stderr bytes.Buffer

	if err := Init(Options{DebugDir: tmpDir, Stderr: &stderr}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("calling identity provider", "operation", "GetRole")
	Close()

	logFile := filepath.Join(tmpDir, time.Now().Format("2006-01-02")+".jsonl")
	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var rec map[string]any
	line := strings.SplitN(strings.TrimSpace(string(content)), "\n", 2)[0]
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v: %s", err, line)
	}
	if rec["msg"] != "calling identity provider" || rec["operation"] != "GetRole" {
		t.Errorf("unexpected record: %v", rec)
	}

	if stderr.Len() != 0 {
		t.Errorf("debug record should not reach stderr, got %q", stderr.String())
	}
}

func TestInit_StderrLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"default", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if err := Init(Options{Verbose: tt.verbose, Stderr: &stderr}); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer Close()

			Debug("debug message")
			Warn("warn message")

			out := stderr.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug on stderr = %v, want %v (output %q)", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "warn message") {
				t.Errorf("warn should always appear on stderr, got %q", out)
			}
		})
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Options{JSONFormat: true, Stderr: &stderr}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Error("boom", "stage", "creating")

	var rec map[string]any
	if err := json.Unmarshal(stderr.Bytes(), &rec); err != nil {
		t.Fatalf("stderr is not JSON: %v: %q", err, stderr.String())
	}
	if rec["stage"] != "creating" {
		t.Errorf("stage = %v, want creating", rec["stage"])
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	With("role", "r1").Info("hello")

	if !strings.Contains(buf.String(), "role=r1") {
		t.Errorf("expected role attribute, got %q", buf.String())
	}
}
