package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log: invalid level %q", level)
	}
}

// New returns a logger writing JSON records to a rotating file in dir.
func New(level string, dir string) *Logger {
	if dir == "" {
		dir = "."
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "flightdeck.slog"),
		MaxSize:    16, // MB
		MaxBackups: 2,
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 128
	}

	l := NewWriter(w, lvl)
	l.LogFile = w.Filename

	l.Info("Hello logging", slog.Time("start", l.Start))
	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.String("Go version", runtime.Version()))

	return l
}

// NewWriter logs to an arbitrary writer; tests use it with a buffer.
func NewWriter(w io.Writer, lvl slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{
		Logger: slog.New(h),
		Start:  time.Now(),
	}
}

// Debug and Info discard records on a nil *Logger, so packages can hold an
// optional logger without checking it at every call site. Warn and Error
// still go through to the default slog logger.
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
	} else {
		l.Logger.Error(msg, args...)
	}
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		Start:   l.Start,
	}
}
