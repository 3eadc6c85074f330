// Package config loads the settings of the ednread console reader from a
// TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xiam/edn/parser"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "EDNREAD_CONFIG"

// Output formats
const (
	FormatDebug = "debug"
	FormatEDN   = "edn"
	FormatTree  = "tree"
	FormatYAML  = "yaml"
)

var (
	// ErrUnknownFileFormat is returned for config files that are neither TOML
	// nor YAML.
	ErrUnknownFileFormat = errors.New("unknown config file format")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("invalid configuration")
)

var (
	outputFormats = []string{FormatDebug, FormatEDN, FormatTree, FormatYAML}
	logLevels     = []string{"debug", "info", "warn", "warning", "error"}
	logFormats    = []string{"text", "json"}
)

// Config holds the complete reader configuration
type Config struct {
	Reader ReaderConfig `toml:"reader" yaml:"reader"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
}

// ReaderConfig holds parser settings
type ReaderConfig struct {
	MaxDepth     int  `toml:"max_depth" yaml:"max_depth"`
	LineComments bool `toml:"line_comments" yaml:"line_comments"`
	All          bool `toml:"all" yaml:"all"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  *bool  `toml:"color" yaml:"color"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// REPLConfig holds interactive reader settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format is picked
// from the file extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileFormat, path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by EDNREAD_CONFIG, or returns the
// defaults if the variable is not set.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatDebug
	}
	if c.Output.Color == nil {
		enabled := true
		c.Output.Color = &enabled
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "edn> "
	}
	if c.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.REPL.HistoryFile = filepath.Join(home, ".ednread_history")
		}
	}
}

// Validate checks that every setting has an accepted value.
func (c *Config) Validate() error {
	if c.Reader.MaxDepth < 0 {
		return fmt.Errorf("%w: reader.max_depth must not be negative, got %d", ErrInvalid, c.Reader.MaxDepth)
	}
	if !contains(outputFormats, c.Output.Format) {
		return fmt.Errorf("%w: output.format must be one of %s, got %q", ErrInvalid, strings.Join(outputFormats, ", "), c.Output.Format)
	}
	if !contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level must be one of %s, got %q", ErrInvalid, strings.Join(logLevels, ", "), c.Log.Level)
	}
	if !contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w: log.format must be one of %s, got %q", ErrInvalid, strings.Join(logFormats, ", "), c.Log.Format)
	}
	return nil
}

// ColorEnabled reports whether styled output is on.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// ParserOptions returns the parser options described by the reader section.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		MaxDepth:     c.Reader.MaxDepth,
		LineComments: c.Reader.LineComments,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
