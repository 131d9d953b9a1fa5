package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/scores"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.input)
			result := confirm(reader, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	reader := strings.NewReader("")
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(EOF) = %v, want false", result)
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	// Test with a reader that returns an error
	reader := &errorReader{}
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(error) = %v, want false", result)
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestRunCleanWithReader(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()

	logPath := filepath.Join(t.TempDir(), "guess-debug.log")
	if err := os.WriteFile(logPath, []byte("log"), 0o644); err != nil {
		t.Fatal(err)
	}
	missingLog := filepath.Join(t.TempDir(), "missing.log")

	tests := []struct {
		name      string
		records   []scores.Record
		logPath   string
		input     string
		skip      bool
		wantCount int
		wantLogs  bool
		wantOut   []string
	}{
		{
			name:     "confirmed",
			records:  sampleRecords(),
			logPath:  logPath,
			input:    "y\n",
			wantLogs: true,
			wantOut:  []string{"2 score(s) in memory", "Cleaned:", "leaderboard cleared (2 score(s))", "1 log file(s) removed"},
		},
		{
			name:      "declined",
			records:   sampleRecords(),
			logPath:   logPath,
			input:     "n\n",
			wantCount: 2,
			wantOut:   []string{"Aborted."},
		},
		{
			name:     "skip prompt",
			records:  sampleRecords(),
			logPath:  missingLog,
			skip:     true,
			wantLogs: true,
			wantOut:  []string{"Cleaned:"},
		},
		{
			name:    "nothing to clean",
			logPath: missingLog,
			wantOut: []string{"Nothing to clean."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skipConfirm = tt.skip
			store := scores.NewMemoryStore(tt.records...)
			logsCleared := false
			clearLogs := func() (int, error) {
				logsCleared = true
				return 1, nil
			}
			var out bytes.Buffer

			err := runCleanWithReader(context.Background(), &out, strings.NewReader(tt.input), store, tt.logPath, clearLogs)
			if err != nil {
				t.Fatalf("runCleanWithReader: %v", err)
			}
			if got := len(store.Load(context.Background()).Records); got != tt.wantCount {
				t.Errorf("records left = %d, want %d", got, tt.wantCount)
			}
			if logsCleared != tt.wantLogs {
				t.Errorf("logs cleared = %v, want %v", logsCleared, tt.wantLogs)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRunCleanWithReader_CorruptStore(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = true

	store := scores.NewMemoryStore()
	store.LoadStatus = scores.StatusCorrupt
	var out bytes.Buffer

	clearLogs := func() (int, error) { return 0, nil }
	missingLog := filepath.Join(t.TempDir(), "missing.log")
	if err := runCleanWithReader(context.Background(), &out, strings.NewReader(""), store, missingLog, clearLogs); err != nil {
		t.Fatalf("runCleanWithReader: %v", err)
	}
	for _, want := range []string{"unreadable leaderboard", "leaderboard cleared (0 score(s))"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunCleanWithReader_ClearLogsError(t *testing.T) {
	origSkip := skipConfirm
	defer func() { skipConfirm = origSkip }()
	skipConfirm = true

	store := scores.NewMemoryStore(sampleRecords()...)
	var out bytes.Buffer

	clearLogs := func() (int, error) { return 0, errors.New("permission denied") }
	missingLog := filepath.Join(t.TempDir(), "missing.log")
	if err := runCleanWithReader(context.Background(), &out, strings.NewReader(""), store, missingLog, clearLogs); err != nil {
		t.Fatalf("log errors should only warn, got %v", err)
	}
	if strings.Contains(out.String(), "log file(s) removed") {
		t.Errorf("no logs were removed:\n%s", out.String())
	}
}

func TestDebugLogPath(t *testing.T) {
	// TestMain points the logger at os.DevNull, which is never offered for removal
	if got := debugLogPath(); got != logger.DefaultLogPath {
		t.Errorf("debugLogPath() = %q, want %q", got, logger.DefaultLogPath)
	}

	custom := filepath.Join(t.TempDir(), "custom.log")
	logger.Reset()
	if err := logger.Init(custom); err != nil {
		t.Fatal(err)
	}
	defer func() {
		logger.Reset()
		logger.Init(os.DevNull)
	}()

	if got := debugLogPath(); got != custom {
		t.Errorf("debugLogPath() = %q, want %q", got, custom)
	}
}
