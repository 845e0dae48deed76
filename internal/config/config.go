// Package config holds runtime configuration: defaults, CLI flag binding,
// layered loading (flags, SEQMV_* environment, config file), and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// OutputFormat selects how the rename plan is printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text" // "Rename SRC to DST" lines (default).
	FormatJSON OutputFormat = "json" // JSON array of {from, to}.
	FormatYAML OutputFormat = "yaml" // YAML list of {from, to}.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultSeparator joins a head to the original file name.
const DefaultSeparator = "_"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [Load] (config file, environment, flags) before being passed by
// pointer to the packages that need it. It is not modified after that.
type Config struct {
	// Sequence.
	Separator    string `mapstructure:"separator"` // Default: "_". Must be non-empty.
	ForcedPrefix string `mapstructure:"prefix"`    // Empty means resolve the head from the inputs.

	// Input.
	BaseDir   string   `mapstructure:"base_dir"` // Relative entries resolve against this. Default: cwd.
	InputFile string   `mapstructure:"from"`     // Read paths from this file instead of stdin.
	Exclude   []string `mapstructure:"exclude"`  // doublestar patterns matched against resolved paths.

	// Behavior.
	ShowPlan     bool         `mapstructure:"show"`    // Default: true. Cleared by --no-show.
	ExecutePlan  bool         `mapstructure:"execute"` // Default: true. Cleared by --no-execute / --dry-run.
	CheckSources bool         `mapstructure:"check"`   // Verify sources exist before renaming.
	OutputFormat OutputFormat `mapstructure:"output"`  // Default: "text".

	// Display and logging.
	Verbose    bool      `mapstructure:"verbose"`
	ColorMode  ColorMode `mapstructure:"color"` // Default: "auto".
	LogFile    string    `mapstructure:"log"`   // Optional log file path.
	ConfigFile string    `mapstructure:"-"`     // Explicit config file (--config).
}

// DefaultConfig returns a Config with all defaults: show and execute the plan,
// "_" separator, text output, automatic colors.
func DefaultConfig() Config {
	return Config{
		Separator:    DefaultSeparator,
		ShowPlan:     true,
		ExecutePlan:  true,
		CheckSources: false,
		OutputFormat: FormatText,
		Verbose:      false,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the separator and prefix, enum fields, and exclude patterns.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}

	switch c.OutputFormat {
	case FormatText, FormatJSON, FormatYAML:
		// valid
	default:
		return errors.New("invalid output format (use 'text', 'json' or 'yaml')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	for _, pat := range c.Exclude {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("invalid exclude pattern %q", pat)
		}
	}

	if hasPathSeparator(c.Separator) {
		return fmt.Errorf("separator %q must not contain a path separator", c.Separator)
	}
	if hasPathSeparator(c.ForcedPrefix) {
		return fmt.Errorf("prefix %q must not contain a path separator", c.ForcedPrefix)
	}
	return nil
}

// hasPathSeparator reports whether s contains "/" or the OS separator. Either
// one in a separator or prefix would move files into a subdirectory.
func hasPathSeparator(s string) bool {
	return strings.ContainsRune(s, '/') || strings.ContainsRune(s, filepath.Separator)
}
