package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLogDir(t *testing.T) string {
	t.Helper()
	prev := logDir
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { logDir = prev })
	return logDir
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := useTempLogDir(t)

	log, logFile := setupLogging(false, io.Discard)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	log.Info().Msg("discarded")

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := useTempLogDir(t)

	log, logFile := setupLogging(true, io.Discard)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Debug().Str("session", "test").Msg("hello")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) || !strings.Contains(string(data), `"session":"test"`) {
		t.Errorf("Expected JSON log line, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := useTempLogDir(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile := setupLogging(true, io.Discard)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_WarnsWhenDirUnusable(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "logs")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}
	prev := logDir
	logDir = blocker
	t.Cleanup(func() { logDir = prev })

	var warn bytes.Buffer
	log, logFile := setupLogging(true, &warn)
	if logFile != nil {
		logFile.Close()
		t.Fatal("Expected nil log file when the directory cannot be created")
	}
	log.Info().Msg("discarded")

	if !strings.Contains(warn.String(), "debug logging disabled") {
		t.Errorf("Expected a warning, got %q", warn.String())
	}
}

func TestSetupLogging_QuietOnSuccess(t *testing.T) {
	useTempLogDir(t)

	var warn bytes.Buffer
	_, logFile := setupLogging(true, &warn)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	if warn.Len() != 0 {
		t.Errorf("Expected no warning, got %q", warn.String())
	}
}
