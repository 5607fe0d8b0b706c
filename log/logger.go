// Package log provides the leveled logger used across dlkfs.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05"

type Logger struct {
	writer io.Writer
	name   string
	level  Level
}

// Rotation configures file rotation for NewRotating.
type Rotation struct {
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New creates a logger writing to stdout.
func New(name string, level Level) *Logger {
	return &Logger{
		writer: os.Stdout,
		name:   name,
		level:  level,
	}
}

// NewRotating creates a logger writing to stdout and a rotated log file.
func NewRotating(name string, level Level, file string, rotation Rotation) *Logger {
	if rotation.MaxSize == 0 {
		rotation.MaxSize = 128
	}
	if rotation.MaxBackups == 0 {
		rotation.MaxBackups = 5
	}
	if rotation.MaxAge == 0 {
		rotation.MaxAge = 16
	}

	return &Logger{
		writer: io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   rotation.Compress,
		}),
		name:  name,
		level: level,
	}
}

// Discard creates a logger that drops everything. Used as the default when no
// logger is configured.
func Discard() *Logger {
	return &Logger{
		writer: io.Discard,
		name:   "",
		level:  Error,
	}
}

// Named returns a child logger sharing the writer and level.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.name != "" {
		child.name = fmt.Sprintf("%s/%s", l.name, name)
	} else {
		child.name = name
	}
	return &child
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", time.Now().Format(timeFormat), level)
	if l.name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.name)
	}

	fmt.Fprintf(l.writer, "%s %s\n", prefix, fmt.Sprintf(msg, args...))
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}
