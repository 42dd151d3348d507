package main

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/lcfrs/induce"
	"github.com/npillmayer/lcfrs/tree"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is read from the working directory if no config file is
// given explicitly.
const DefaultConfigFile = "lcfrs.yaml"

// EnvPrefix is the prefix of environment variables overriding config values.
const EnvPrefix = "LCFRS_"

// Config holds the settings of a run.
type Config struct {
	Output        string `koanf:"output"`         // file for the induced rules, empty for stdout
	Order         string `koanf:"order"`          // daughter order: position or declared
	Strict        bool   `koanf:"strict"`         // abort at the first tree which cannot be induced
	Workers       int    `koanf:"workers"`        // number of goroutines inducing rules
	ProgressEvery int    `koanf:"progress_every"` // trees between progress notifications
	Trace         string `koanf:"trace"`          // trace level: Debug, Info or Error
	Quiet         bool   `koanf:"quiet"`          // suppress progress and run report
	Format        int    `koanf:"format"`         // NeGra export format, 0 for auto-detect
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"output":         "",
		"order":          tree.OrderByPosition.String(),
		"strict":         false,
		"workers":        1,
		"progress_every": induce.DefaultProgressInterval,
		"trace":          "Error",
		"quiet":          false,
		"format":         0,
	}
}

// loadConfig layers configuration: defaults, then the config file, then
// environment variables, then command-line flags which have explicitly been set.
// The file is optional unless cfgFile names it.
func loadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, "", errors.Wrap(err, "failed to load defaults")
	}
	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", errors.Wrapf(err, "error reading config file %s", used)
		}
	}
	// LCFRS_PROGRESS_EVERY -> progress_every
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, "", errors.Wrap(err, "failed to load environment variables")
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", errors.Wrap(err, "failed to load flags")
		}
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", errors.Wrap(err, "unable to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}

// Validate checks a configuration for values out of range.
func (cfg *Config) Validate() error {
	if _, err := tree.ParseDaughterOrder(cfg.Order); err != nil {
		return err
	}
	if cfg.Workers < 1 {
		return errors.Errorf("number of workers must be at least 1, is %d", cfg.Workers)
	}
	if cfg.ProgressEvery < 1 {
		return errors.Errorf("progress interval must be at least 1, is %d", cfg.ProgressEvery)
	}
	if cfg.Format != 0 && cfg.Format != 3 && cfg.Format != 4 {
		return errors.Errorf("unsupported NeGra format %d", cfg.Format)
	}
	switch strings.ToLower(cfg.Trace) {
	case "debug", "info", "error":
	default:
		return errors.Errorf("unknown trace level %q", cfg.Trace)
	}
	return nil
}

// DaughterOrder returns the configured daughter order.
func (cfg *Config) DaughterOrder() tree.DaughterOrder {
	order, _ := tree.ParseDaughterOrder(cfg.Order)
	return order
}
