package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShouldLogRespectsLevel(t *testing.T) {
	currentLogLevel = "warn"

	if !shouldLog("error") {
		t.Error("error should log at warn level")
	}
	if !shouldLog("warn") {
		t.Error("warn should log at warn level")
	}
	if shouldLog("info") {
		t.Error("info should not log at warn level")
	}
	if shouldLog("debug") {
		t.Error("debug should not log at warn level")
	}

	// Unknown levels fall back to info.
	currentLogLevel = "bogus"
	if !shouldLog("info") {
		t.Error("info should log at the fallback level")
	}
	if shouldLog("debug") {
		t.Error("debug should not log at the fallback level")
	}
}

func TestInitWithConfigWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	if err := InitWithConfig("debug", logPath); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	Info.Printf("hello")
	Debug.Printf("world")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output in file")
	}
}
