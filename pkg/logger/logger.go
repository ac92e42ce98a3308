// Package logger writes the application's debug log. The terminal is owned by
// the UI, so all output goes to a file under the storage directory.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	DEBUG Level = "DEBUG"
	INFO  Level = "INFO"
	WARN  Level = "WARN"
	ERROR Level = "ERROR"
)

// FileName is the log file created inside the storage directory.
const FileName = "debug.log"

// Logger wraps zap.SugaredLogger with printf-style helpers.
type Logger struct {
	sugar    *zap.SugaredLogger
	filePath string
}

// New opens (or creates) storagePath/debug.log and logs at DEBUG and above.
func New(storagePath string) (*Logger, error) {
	return NewWithLevel(storagePath, string(DEBUG))
}

// NewWithLevel is New with a minimum level. Unknown levels mean INFO.
func NewWithLevel(storagePath, level string) (*Logger, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(storagePath, FileName)

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	fileEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	fileCore := zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), ParseLevel(level))
	zapLogger := zap.New(fileCore, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{
		sugar:    zapLogger.Sugar(),
		filePath: logPath,
	}, nil
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch Level(strings.ToUpper(strings.TrimSpace(level))) {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ValidLevel reports whether level names one of the supported levels.
func ValidLevel(level string) bool {
	switch Level(strings.ToUpper(strings.TrimSpace(level))) {
	case DEBUG, INFO, WARN, ERROR:
		return true
	}
	return false
}

func (l *Logger) log(level Level, message string) {
	switch level {
	case DEBUG:
		l.sugar.Debug(message)
	case INFO:
		l.sugar.Info(message)
	case WARN:
		l.sugar.Warn(message)
	case ERROR:
		l.sugar.Error(message)
	}
}

func (l *Logger) Debug(format string, v ...any) {
	l.log(DEBUG, fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...any) {
	l.log(INFO, fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...any) {
	l.log(WARN, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...any) {
	l.log(ERROR, fmt.Sprintf(format, v...))
}

// Path returns the log file path, empty for a Nop logger.
func (l *Logger) Path() string {
	return l.filePath
}

// GetLastLines returns the last n lines of the log file.
func (l *Logger) GetLastLines(n int) string {
	if l.filePath == "" {
		return ""
	}
	content, err := os.ReadFile(l.filePath)
	if err != nil {
		return "Error reading log file"
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}

	return strings.Join(lines[len(lines)-n:], "\n")
}

func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
