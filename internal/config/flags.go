package config

// This file binds CLI flags to a Config.
// Flags are grouped into sequence, input, behavior, and display.
// Negated flags (e.g. --no-show, --dry-run) are applied after loading so that
// config-file and environment values hold unless the user passes the flag.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// NegatedFlags holds boolean flags that are applied after [Load].
// Each one clears a setting that defaults to true.
type NegatedFlags struct {
	noShow    bool
	noExecute bool
	dryRun    bool
}

// BindFlags registers every seqmv flag on fs, writing into cfg. Call it with
// cfg already holding [DefaultConfig] so flag defaults match.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *NegatedFlags {
	var n NegatedFlags

	defineSequenceFlags(fs, cfg)
	defineInputFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &n)
	defineDisplayFlags(fs, cfg)

	return &n
}

// defineSequenceFlags registers -s/--separator and -p/--prefix.
func defineSequenceFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.Separator, "separator", "s", cfg.Separator, "separator between head and original name")
	fs.StringVarP(&cfg.ForcedPrefix, "prefix", "p", cfg.ForcedPrefix, "force the sequence head instead of inferring it")
}

// defineInputFlags registers -b/--base-dir, -f/--from, -x/--exclude.
func defineInputFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.BaseDir, "base-dir", "b", cfg.BaseDir, "resolve relative paths against `dir` (default: working directory)")
	fs.StringVarP(&cfg.InputFile, "from", "f", cfg.InputFile, "read the path list from `file` instead of stdin")
	fs.StringArrayVarP(&cfg.Exclude, "exclude", "x", cfg.Exclude, "drop input paths matching `glob` (repeatable, ** supported)")
}

// defineBehaviorFlags registers dry-run, no-show, no-execute, check, output.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config, n *NegatedFlags) {
	fs.BoolVarP(&n.dryRun, "dry-run", "n", false, "show the plan without renaming anything")
	fs.BoolVar(&n.noShow, "no-show", false, "do not print the plan")
	fs.BoolVar(&n.noExecute, "no-execute", false, "do not rename anything")
	fs.BoolVarP(&cfg.CheckSources, "check", "c", cfg.CheckSources, "verify every source exists before renaming")
	fs.VarP(&outputFormatValue{&cfg.OutputFormat}, "output", "o", "plan output format: text | json | yaml")
}

// defineDisplayFlags registers --color, -v/--verbose, -l/--log, --config.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "color output: auto | always | never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "append logs to `file`")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "config `file` (default: $XDG_CONFIG_HOME/seqmv/seqmv.yaml)")
}

// Apply copies negated flag values into cfg (e.g. dryRun -> ExecutePlan=false).
// --dry-run also forces the plan to be shown.
func (n *NegatedFlags) Apply(cfg *Config) {
	if n.noShow {
		cfg.ShowPlan = false
	}
	if n.noExecute {
		cfg.ExecutePlan = false
	}
	if n.dryRun {
		cfg.ShowPlan = true
		cfg.ExecutePlan = false
	}
}

// pflag.Value adapters so we can use enum types (OutputFormat, ColorMode) with fs.Var.

type outputFormatValue struct{ p *OutputFormat }

func (o *outputFormatValue) String() string { return string(*o.p) }
func (o *outputFormatValue) Type() string   { return "format" }
func (o *outputFormatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "text":
		*o.p = FormatText
	case "json":
		*o.p = FormatJSON
	case "yaml", "yml":
		*o.p = FormatYAML
	default:
		return fmt.Errorf("invalid output format %q (use 'text', 'json' or 'yaml')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
