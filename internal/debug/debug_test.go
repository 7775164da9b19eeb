package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pointLogAt routes the log path into a temp directory and registers cleanup.
func pointLogAt(t *testing.T, dir string) string {
	t.Helper()

	orig := getLogPath
	getLogPath = func() (string, error) {
		return filepath.Join(dir, LogDirName, LogFileName), nil
	}
	t.Cleanup(func() {
		getLogPath = orig
		Close()
		resetForTest()
	})
	return filepath.Join(dir, LogDirName, LogFileName)
}

func TestInitDisabled(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	if err := Init(false); err != nil {
		t.Fatalf("Init(false) failed: %v", err)
	}
	if Enabled() {
		t.Error("Enabled() should return false when initialized with false")
	}

	// All of these must be no-ops and must not panic.
	Log("dropped")
	Log("dropped", 123, "more")
	Logf("dropped %s", "fmt")
}

func TestInitEnabledWritesLog(t *testing.T) {
	resetForTest()
	logPath := pointLogAt(t, t.TempDir())

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	if !Enabled() {
		t.Error("Enabled() should return true when initialized with true")
	}

	Log("test message")
	Logf("test %s %d", "formatted", 42)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	for _, want := range []string{"debug log started", "test message", "test formatted 42"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Log file should contain %q", want)
		}
	}
}

func TestInitTruncatesExistingLog(t *testing.T) {
	resetForTest()
	logPath := pointLogAt(t, t.TempDir())

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		t.Fatalf("Failed to create log directory: %v", err)
	}
	if err := os.WriteFile(logPath, []byte("stale content from the last run\n"), 0600); err != nil {
		t.Fatalf("Failed to write pre-existing log: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "stale content") {
		t.Error("Log file should have been truncated, but old content still present")
	}
	if !strings.Contains(string(content), "debug log started") {
		t.Error("Log file should contain new startup message")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	resetForTest()
	pointLogAt(t, t.TempDir())

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}

	Close()
	Close()
	Close()
}

func TestGetLogPath(t *testing.T) {
	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() failed: %v", err)
	}

	if !strings.HasSuffix(path, filepath.Join(LogDirName, LogFileName)) {
		t.Errorf("GetLogPath() = %q, want suffix %q", path, filepath.Join(LogDirName, LogFileName))
	}
}

// resetForTest resets the package state for testing.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}
