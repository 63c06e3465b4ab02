// Package logger provides a file-backed logger shared by all packages.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger *zerolog.Logger
	logFile      *os.File
	level        = zerolog.InfoLevel
	mu           sync.Mutex
)

// Init initializes the global logger with the specified log file path.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	// Close previous log file if exists
	if logFile != nil {
		logFile.Close()
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //#nosec G304 -- user-provided log path
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	l := zerolog.New(zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: "15:04:05.000000",
	}).Level(level).With().Timestamp().Logger()
	globalLogger = &l

	return nil
}

// SetVerbose toggles debug output. It applies to the current and future loggers.
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()

	level = zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if globalLogger != nil {
		l := globalLogger.Level(level)
		globalLogger = &l
	}
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	globalLogger = nil
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	write(zerolog.InfoLevel, format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	write(zerolog.DebugLevel, format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	write(zerolog.ErrorLevel, format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	write(zerolog.WarnLevel, format, v...)
}

func write(lvl zerolog.Level, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.WithLevel(lvl).Msgf(format, v...)
	}
}

// GetWriter returns the underlying writer.
func GetWriter() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		return logFile
	}
	return io.Discard
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
