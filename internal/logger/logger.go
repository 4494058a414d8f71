// Package logger keeps the viewer's log: structured slog records that are held in memory
// for the console and appended to a log file on disk.
package logger

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultPath is the log file relative to the working directory.
const DefaultPath = "logs/viewer.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Logger stores formatted log lines in memory and appends them to a file.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	level slog.LevelVar
	log   *slog.Logger
}

// New returns a Logger writing to path, creating its directory. An empty path keeps
// lines in memory only.
func New(path string) *Logger {
	l := &Logger{lines: make([]string, 0), path: path}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	l.level.Set(slog.LevelInfo)
	l.log = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{
		Level: &l.level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.DateTime))
			}
			return a
		},
	}))
	return l
}

// Write receives formatted records from the slog handler.
func (l *Logger) Write(p []byte) (int, error) {
	line := string(bytes.TrimRight(p, "\n"))

	l.mu.Lock()
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()

	if l.path != "" {
		f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return len(p), nil
		}
		_, _ = f.WriteString(line + "\n")
		_ = f.Close()
	}
	return len(p), nil
}

// Slog returns the structured logger.
func (l *Logger) Slog() *slog.Logger { return l.log }

// Log records a plain line at info level (console input and replies).
func (l *Logger) Log(line string) { l.log.Info(line) }

func (l *Logger) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log.Error(msg, args...) }

// SetLevel parses and sets the logging level.
// Accepts: debug, info, warn/warning, error (case-insensitive).
func (l *Logger) SetLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l.level.Set(slog.LevelDebug)
	case "", "info":
		l.level.Set(slog.LevelInfo)
	case "warn", "warning":
		l.level.Set(slog.LevelWarn)
	case "error":
		l.level.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}
	return nil
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
