// Package config loads the optional TOML configuration of linegrep.
//
// A configuration is looked up in this order:
//  1. the --config flag
//  2. env var LINEGREP_CONFIG with a file path
//  3. env var LINEGREP_CONFIG_TOML with the file content
//
// If none is set the defaults are used. Flags given on the command line
// override the values read here.
package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	goversion "github.com/hashicorp/go-version"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/linegrep/linegrep"
	"github.com/linegrep/linegrep/logging"
	"github.com/linegrep/linegrep/regexp"
)

const (
	EnvPath    = "LINEGREP_CONFIG"
	EnvContent = "LINEGREP_CONFIG_TOML"
)

type Config struct {
	// Engine is the regex engine name, see regexp.ParseEngine.
	Engine string `koanf:"engine"`

	// LogLevel is one of trace, debug, info, warn, error or fatal.
	LogLevel string `koanf:"log_level"`

	// MinVersion is the oldest linegrep release this file was written for.
	MinVersion string `koanf:"min_version"`

	// Origin describes where the configuration came from.
	Origin string `koanf:"-"`
}

func Default() Config {
	return Config{
		Engine:   string(regexp.DefaultEngine),
		LogLevel: "info",
		Origin:   "default",
	}
}

// Parse decodes TOML content on top of the defaults. Unknown keys and
// invalid values are rejected with an error wrapping linegrep.ErrConfig.
func Parse(raw []byte) (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(raw), toml.Parser()); err != nil {
		return cfg, fmt.Errorf("%w: %w", linegrep.ErrConfig, err)
	}

	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", linegrep.ErrConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReadFile parses the configuration file at path.
func ReadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("%w: %w", linegrep.ErrConfig, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Origin = path
	return cfg, nil
}

// Resolve finds and loads the configuration. flagPath is the value of
// --config; getenv is os.Getenv outside of tests.
func Resolve(flagPath string, getenv func(string) string) (Config, error) {
	if flagPath != "" {
		logging.Debug().Msgf("using config %s from `--config`", flagPath)
		return ReadFile(flagPath)
	}
	if envPath := getenv(EnvPath); envPath != "" {
		logging.Debug().Msgf("using config from %s env var: %s", EnvPath, envPath)
		return ReadFile(envPath)
	}
	if content := getenv(EnvContent); content != "" {
		logging.Debug().Str("content", content).Msgf("using config from %s env var content", EnvContent)
		cfg, err := Parse([]byte(content))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvContent, err)
		}
		cfg.Origin = EnvContent
		return cfg, nil
	}
	return Default(), nil
}

func (c Config) validate() error {
	if _, err := regexp.ParseEngine(c.Engine); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", linegrep.ErrConfig, err)
	}
	if c.MinVersion != "" {
		if _, err := goversion.NewVersion(c.MinVersion); err != nil {
			return fmt.Errorf("%w: min_version: %w", linegrep.ErrConfig, err)
		}
	}
	return nil
}

// Outdated reports whether current is older than MinVersion. Development
// builds that do not parse as a version are never outdated.
func (c Config) Outdated(current string) bool {
	if c.MinVersion == "" {
		return false
	}
	want, err := goversion.NewVersion(c.MinVersion)
	if err != nil {
		return false
	}
	have, err := goversion.NewVersion(current)
	if err != nil {
		logging.Debug().Str("version", current).Msg("could not parse running version")
		return false
	}
	return have.LessThan(want)
}
