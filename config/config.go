// Package config loads the settings of the monkey command line tool.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "MONKEY_LOG_LEVEL"

// Config holds the REPL and logging settings.
type Config struct {
	Prompt             string `toml:"prompt" yaml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt" yaml:"continuation_prompt"`
	HistoryFile        string `toml:"history_file" yaml:"history_file"`
	LogLevel           string `toml:"log_level" yaml:"log_level"`
	Color              bool   `toml:"color" yaml:"color"`
	ShowBanner         bool   `toml:"show_banner" yaml:"show_banner"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Color:      true,
		ShowBanner: true,
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path. Files ending in .yaml or .yml are decoded as
// YAML, anything else as TOML. Settings missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing yaml config %s", path)
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing toml config %s", path)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return cfg, nil
}

// LoadOrDefault loads path, or returns Default() when path is empty.
// MONKEY_LOG_LEVEL is applied either way.
func LoadOrDefault(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	if path == "" {
		cfg = Default()
	} else if cfg, err = Load(path); err != nil {
		return nil, err
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that cannot be fixed up by defaults.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return errors.Errorf("invalid log_level %q", c.LogLevel)
	}

	if strings.ContainsAny(c.Prompt, "\n") || strings.ContainsAny(c.ContinuationPrompt, "\n") {
		return errors.New("prompts must fit on one line")
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = ">> "
	}
	if c.ContinuationPrompt == "" {
		c.ContinuationPrompt = ".. "
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.HistoryFile = filepath.Join(home, ".monkey_history")
		}
	}
}

func (c *Config) expandEnvVars() {
	c.HistoryFile = os.ExpandEnv(c.HistoryFile)
}
