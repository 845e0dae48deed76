// Package logging provides the leveled logger used across seqmv. It keeps
// stdout free for the rename plan: every log line goes to stderr, and
// optionally to an append-mode log file without colors.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/backmassage/seqmv/internal/config"
	"github.com/backmassage/seqmv/internal/term"
)

// SuccessLevel sits between info and warn; charmbracelet/log renders it
// through the "DONE" level style.
const SuccessLevel = log.InfoLevel + 2

const timeFormat = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu       sync.Mutex
	out      *log.Logger
	file     *os.File
	fileLog  *log.Logger
	filePath string
}

// NewLogger configures terminal colors from cfg, logs to stderr, and
// optionally opens cfg.LogFile. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return NewLoggerTo(os.Stderr, cfg)
}

// NewLoggerTo is NewLogger with an explicit terminal writer.
func NewLoggerTo(w io.Writer, cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{out: newCharmLogger(w)}
	l.out.SetColorProfile(term.Profile())

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
		l.fileLog = newCharmLogger(f)
	}
	return l, nil
}

func newCharmLogger(w io.Writer) *log.Logger {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           log.DebugLevel,
	})
	styles := log.DefaultStyles()
	styles.Levels[SuccessLevel] = lipgloss.NewStyle().
		SetString("DONE").
		Bold(true).
		Foreground(lipgloss.Color("#10B981"))
	lg.SetStyles(styles)
	return lg
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.fileLog = nil
		return err
	}
	return nil
}

func (l *Logger) line(level log.Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Log(level, text)
	if l.fileLog != nil {
		l.fileLog.Log(level, ansi.Strip(text))
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(log.InfoLevel, fmt.Sprintf(format, args...))
}

// Success logs at DONE level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(SuccessLevel, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(log.WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(log.ErrorLevel, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line(log.DebugLevel, fmt.Sprintf(format, args...))
}
