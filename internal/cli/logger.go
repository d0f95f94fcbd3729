// Package cli provides the command-line interface for wic.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/avalluri/wic/internal/constants"
)

// logFileWriter holds the log file writer for cleanup purposes.
// This is package-level to enable cleanup during shutdown.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
// This is separate from globalLoggerMu to avoid deadlocks.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// InitLogger creates and configures a zerolog.Logger based on verbosity flags.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// Output format is determined by the terminal:
//   - TTY with colors enabled: Console writer with timestamps
//   - Non-TTY or NO_COLOR set: JSON output to stderr
//
// The logger also writes to ~/.wic/logs/wic.log with rotation enabled.
// If the log file cannot be created, the logger will continue with
// console-only output.
func InitLogger(verbose, quiet bool) zerolog.Logger {
	level := selectLevel(verbose, quiet)
	console := selectOutput()

	var writer io.Writer = console
	if fileWriter, err := createLogFileWriter(); err == nil {
		logFileWriter = fileWriter
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates and configures a zerolog.Logger with a custom
// writer. This is primarily intended for testing purposes.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	level := selectLevel(verbose, quiet)
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	setGlobalLogger(logger)
	return logger
}

// setGlobalLogger configures the global zerolog logger to match our CLI
// logger config. This ensures that any code using log.Debug(), log.Info(),
// etc. from the github.com/rs/zerolog/log package uses the same formatting
// as our CLI logger. This function is safe for concurrent use.
func setGlobalLogger(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

// CloseLogFile closes the global log file writer if it was opened.
// This should be called during application shutdown for clean cleanup.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// selectLevel determines the appropriate log level based on flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput determines the appropriate output writer based on
// terminal capabilities and environment settings.
func selectOutput() io.Writer {
	// Use console writer for TTY without NO_COLOR
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}

	// Default to JSON output for non-TTY or when NO_COLOR is set
	return os.Stderr
}

// createLogFileWriter creates a rotating file writer for the global CLI log.
// Returns a lumberjack logger configured with rotation settings.
func createLogFileWriter() (io.WriteCloser, error) {
	wicHome, err := getWicHome()
	if err != nil {
		return nil, err
	}

	logDir := filepath.Join(wicHome, constants.LogsDir)
	logPath := filepath.Join(logDir, constants.CLILogFileName)

	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}, nil
}

// getWicHome returns the wic home directory path.
// If the WIC_HOME environment variable is set, it uses that.
// Otherwise, it defaults to ~/.wic.
func getWicHome() (string, error) {
	if wicHome := os.Getenv("WIC_HOME"); wicHome != "" {
		return wicHome, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.WicHome), nil
}

// LogFilePath returns the path to the global CLI log file.
// This is useful for displaying the log location to users.
func LogFilePath() (string, error) {
	wicHome, err := getWicHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(wicHome, constants.LogsDir, constants.CLILogFileName), nil
}
