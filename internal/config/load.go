package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also the config file base name.
	AppName = "seqmv"
	// EnvPrefix prefixes environment overrides (SEQMV_SEPARATOR, ...).
	EnvPrefix = "SEQMV"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"separator": "separator",
	"prefix":    "prefix",
	"base_dir":  "base-dir",
	"from":      "from",
	"exclude":   "exclude",
	"check":     "check",
	"output":    "output",
	"verbose":   "verbose",
	"color":     "color",
	"log":       "log",
}

// ConfigDir returns the seqmv configuration directory
// ($XDG_CONFIG_HOME/seqmv, ~/Library/Application Support/seqmv, %AppData%\seqmv).
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// Load layers settings into cfg with precedence
//
//	changed flags > SEQMV_* environment > config file > cfg's current values
//
// fs must have been populated by [BindFlags] and parsed. A missing default
// config file is not an error; a missing --config file is. Negated flags are
// not handled here; call [NegatedFlags.Apply] afterwards.
func Load(fs *pflag.FlagSet, cfg *Config) error {
	v := viper.New()

	v.SetDefault("separator", cfg.Separator)
	v.SetDefault("prefix", cfg.ForcedPrefix)
	v.SetDefault("base_dir", cfg.BaseDir)
	v.SetDefault("from", cfg.InputFile)
	exclude := cfg.Exclude
	if exclude == nil {
		exclude = []string{}
	}
	v.SetDefault("exclude", exclude)
	v.SetDefault("show", cfg.ShowPlan)
	v.SetDefault("execute", cfg.ExecutePlan)
	v.SetDefault("check", cfg.CheckSources)
	v.SetDefault("output", string(cfg.OutputFormat))
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("color", string(cfg.ColorMode))
	v.SetDefault("log", cfg.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := readConfigFile(v, cfg.ConfigFile); err != nil {
		return err
	}

	for key, name := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if v.ConfigFileUsed() != "" {
		cfg.ConfigFile = v.ConfigFileUsed()
	}
	if cfg.BaseDir != "" {
		cfg.BaseDir = NormalizeDirArg(cfg.BaseDir)
	}
	return nil
}

// readConfigFile loads path when set; otherwise it searches the config
// directory and then the working directory for seqmv.{yaml,toml,json}.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(AppName)
	if dir, err := ConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}
