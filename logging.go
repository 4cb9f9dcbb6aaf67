package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"
)

// LogLevel represents the logging level
type LogLevel int

// Higher levels are more verbose.
const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var (
	debugTag = color.New(color.FgCyan).Sprint("DEBUG")
	infoTag  = color.New(color.FgGreen).Sprint("INFO ")
	warnTag  = color.New(color.FgYellow).Sprint("WARN ")
	errorTag = color.New(color.FgRed, color.Bold).Sprint("ERROR")
)

// Logger provides leveled logging on top of the standard log package
type Logger struct {
	level LogLevel
}

// NewLogger creates a new logger with the specified level
func NewLogger(levelStr string) *Logger {
	var level LogLevel
	switch strings.ToLower(levelStr) {
	case "debug":
		level = LogLevelDebug
	case "warn":
		level = LogLevelWarn
	case "error":
		level = LogLevelError
	default:
		level = LogLevelInfo
	}

	return &Logger{level: level}
}

func (l *Logger) output(level LogLevel, tag, msg string) {
	if l.level >= level {
		log.Printf("%s %s", tag, msg)
	}
}

// Infof logs formatted messages at info level
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(LogLevelInfo, infoTag, fmt.Sprintf(format, v...))
}

// Debugf logs formatted messages at debug level (only shown when debug is enabled)
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(LogLevelDebug, debugTag, fmt.Sprintf(format, v...))
}

// Warnf logs formatted warnings
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(LogLevelWarn, warnTag, fmt.Sprintf(format, v...))
}

// Errorf logs formatted errors (always shown). It never exits.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(LogLevelError, errorTag, fmt.Sprintf(format, v...))
}

// Fatalf logs formatted fatal messages and exits (always shown)
func (l *Logger) Fatalf(format string, v ...interface{}) {
	log.Fatalf("%s %s", errorTag, fmt.Sprintf(format, v...))
}

// Global logger instance
var logger = NewLogger("info")

// InitializeLogger initializes the global logger with config
func InitializeLogger(config *Config) {
	logger = NewLogger(config.Logging.Level)
}

// Convenience functions for global logger
func LogInfof(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func LogDebugf(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

func LogWarnf(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

func LogErrorf(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

func LogFatalf(format string, v ...interface{}) {
	logger.Fatalf(format, v...)
}
