package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging opens the debug log file, rotating it first when oversized
// The terminal owns stdout, so without debug nothing is logged
// Setup problems are reported to warn, which must be written before the screen starts
func setupLogging(debug bool, warn io.Writer) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(warn, "snake: debug logging disabled: %v\n", err)
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(warn, "snake: log rotation failed, appending to %s: %v\n", logPath, err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(warn, "snake: debug logging disabled: %v\n", err)
		return zerolog.Nop(), nil
	}

	log := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return log, f
}
