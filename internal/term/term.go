// Package term resolves whether output is colored and holds the shared
// lipgloss styles used by logging and display.
//
// [Configure] runs once during startup (from [logging.NewLogger]). When
// colors are disabled every style renders as plain text, so callers never
// need to branch on the color mode.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/seqmv/internal/config"
)

// Shared styles. Plain until [Configure] enables colors.
var (
	Source  = lipgloss.NewStyle()
	Dest    = lipgloss.NewStyle()
	Keyword = lipgloss.NewStyle()
	Stage   = lipgloss.NewStyle()
	Cause   = lipgloss.NewStyle()
	Detail  = lipgloss.NewStyle()
)

var enabled bool

// Configure resolves the color mode, sets the lipgloss color profile, and
// (re)builds the shared styles.
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		lipgloss.SetColorProfile(Profile())
		Source = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
		Dest = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
		Keyword = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
		Stage = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
		Cause = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
		Detail = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	Source, Dest, Keyword, Stage, Cause, Detail = plain(), plain(), plain(), plain(), plain(), plain()
}

// Profile returns the color profile matching the current mode: ANSI256 when
// enabled, plain ASCII otherwise.
func Profile() termenv.Profile {
	if enabled {
		return termenv.ANSI256
	}
	return termenv.Ascii
}

func plain() lipgloss.Style { return lipgloss.NewStyle() }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
