// Package config loads settings for the calc command.
//
// Settings come from, lowest priority first: built-in defaults, a YAML or TOML
// file, CALC_ environment variables, and command-line flags that were
// explicitly set.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/calc"
)

// EnvPrefix is the prefix of environment variables that set config keys.
// CALC_LOG_FORMAT sets log_format.
const EnvPrefix = "CALC_"

// DefaultFile is the config file read from the working directory when no file
// is named explicitly.
const DefaultFile = "calc.yaml"

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// Config holds the settings of the calc command.
type Config struct {
	// Digits is the maximum number of digits after the decimal point.
	Digits int `koanf:"digits"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// LogFormat is LogText or LogJSON.
	LogFormat string `koanf:"log_format"`
	// Strict makes a result of Error a failure of the command.
	Strict bool `koanf:"strict"`
	// Prompt is the REPL prompt.
	Prompt string `koanf:"prompt"`
	// HistoryFile is where the REPL keeps line history. Empty disables it.
	HistoryFile string `koanf:"history_file"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"digits":       calc.DefaultMaxFractionDigits,
		"verbose":      false,
		"log_format":   LogText,
		"strict":       false,
		"prompt":       "calc> ",
		"history_file": "",
	}
}

// Load reads the configuration. If path is empty, DefaultFile is used when it
// exists. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := path
	if used == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			used = DefaultFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), parserFor(used)); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// CALC_HISTORY_FILE -> history_file
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings make sense.
func (c *Config) Validate() error {
	var errs []error
	if c.Digits < 0 {
		errs = append(errs, fmt.Errorf("digits must not be negative, got %d", c.Digits))
	}
	switch c.LogFormat {
	case LogText, LogJSON:
	default:
		errs = append(errs, fmt.Errorf("log_format must be %q or %q, got %q", LogText, LogJSON, c.LogFormat))
	}
	return errors.Join(errs...)
}
