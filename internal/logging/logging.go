// Package logging provides the run-scoped logger used by the CLI and the
// batch runner. Console output goes to stderr; an optional file sink appends
// timestamped comma-delimited records for the lifetime of one run.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger
	file *os.File
}

// NewLogger creates a console-only logger. Without verbose only warnings
// and errors are shown.
func NewLogger(verbose bool) *Logger {
	return &Logger{SugaredLogger: zap.New(consoleCore(verbose)).Sugar()}
}

// NewFileLogger additionally appends records to the given file.
func NewFileLogger(path string, verbose bool) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	cfg := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		ConsoleSeparator: ",",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.SecondsDurationEncoder,
	}
	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(file),
		zapcore.InfoLevel,
	)

	core := zapcore.NewTee(consoleCore(verbose), fileCore)
	return &Logger{SugaredLogger: zap.New(core).Sugar(), file: file}, nil
}

// NewNop discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Close flushes buffered records and releases the file sink.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func consoleCore(verbose bool) zapcore.Core {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		level,
	)
}
