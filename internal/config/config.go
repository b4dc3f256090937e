// Package config loads the settings shared by the docgen binaries from
// command line flags, DOCGEN_* environment variables and an optional
// configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/anixcopiadora/docgen"
	"github.com/anixcopiadora/docgen/pageops"
)

const (
	// Output formats for listings and schemas
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	// Default values
	DefaultOutDir       = "."
	DefaultLogLevel     = "info"
	DefaultFormat       = FormatText
	DefaultPreviewDelay = 800 * time.Millisecond
	DefaultServerName   = "docgen"
	DefaultVersion      = "1.0.0"

	// Directory permissions
	DefaultDirPerm = 0o750

	EnvPrefix = "DOCGEN"
)

// Config holds the settings of a docgen process.
type Config struct {
	OutDir       string
	Author       string
	PreviewDelay time.Duration
	Watermark    string // preview watermark text, empty for none
	PageNumbers  bool
	LogLevel     string
	Format       string

	ServerName string
	Version    string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutDir:       DefaultOutDir,
		Author:       "",
		PreviewDelay: DefaultPreviewDelay,
		Watermark:    pageops.PreviewWatermark.Text,
		PageNumbers:  false,
		LogLevel:     DefaultLogLevel,
		Format:       DefaultFormat,
		ServerName:   DefaultServerName,
		Version:      DefaultVersion,
	}
}

// Flags returns a flag set carrying the shared flags. Callers add their own
// flags before parsing and pass the parsed set to FromFlags.
func Flags(name string) *pflag.FlagSet {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "Configuration file (yaml or json)")
	fs.String("out", cfg.OutDir, "Directory where documents are written")
	fs.String("author", cfg.Author, "Author written to the document information")
	fs.Duration("preview-delay", cfg.PreviewDelay, "Quiet period before a preview is regenerated")
	fs.String("watermark", cfg.Watermark, "Watermark stamped on previews (empty disables it)")
	fs.Bool("page-numbers", cfg.PageNumbers, "Number the pages of every document")
	fs.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("format", cfg.Format, "Output format for listings (text, json, yaml)")
	return fs
}

// FromFlags resolves the configuration from a parsed flag set. Explicit
// flags win over environment variables, which win over the configuration
// file, which wins over the defaults.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	cfg := DefaultConfig()
	populateConfigFromViper(v, cfg)

	if cfg.OutDir != "" {
		if abs, err := filepath.Abs(cfg.OutDir); err == nil {
			cfg.OutDir = abs
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Load parses args with the shared flags only.
func Load(name string, args []string) (*Config, error) {
	fs := Flags(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// newViper configures environment lookups and defaults
func newViper() *viper.Viper {
	cfg := DefaultConfig()
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("out", cfg.OutDir)
	v.SetDefault("author", cfg.Author)
	v.SetDefault("preview-delay", cfg.PreviewDelay)
	v.SetDefault("watermark", cfg.Watermark)
	v.SetDefault("page-numbers", cfg.PageNumbers)
	v.SetDefault("loglevel", cfg.LogLevel)
	v.SetDefault("format", cfg.Format)
	return v
}

func populateConfigFromViper(v *viper.Viper, cfg *Config) {
	cfg.OutDir = v.GetString("out")
	cfg.Author = v.GetString("author")
	cfg.PreviewDelay = v.GetDuration("preview-delay")
	cfg.Watermark = v.GetString("watermark")
	cfg.PageNumbers = v.GetBool("page-numbers")
	cfg.LogLevel = strings.ToLower(v.GetString("loglevel"))
	cfg.Format = strings.ToLower(v.GetString("format"))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return errors.New("output directory cannot be empty")
	}
	if info, err := os.Stat(c.OutDir); err == nil && !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", c.OutDir)
	}

	if c.PreviewDelay < 0 {
		return errors.New("preview delay cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format: %s (must be one of: text, json, yaml)", c.Format)
	}
	return nil
}

// EnsureOutDir creates the output directory when missing.
func (c *Config) EnsureOutDir() error {
	if err := os.MkdirAll(c.OutDir, DefaultDirPerm); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", c.OutDir, err)
	}
	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// GeneratorOptions translates the configuration into docgen options.
func (c *Config) GeneratorOptions() []docgen.Option {
	var opts []docgen.Option
	if c.Author != "" {
		opts = append(opts, docgen.WithAuthor(c.Author))
	}
	if c.Watermark != "" {
		wm := pageops.PreviewWatermark
		wm.Text = c.Watermark
		opts = append(opts, docgen.WithWatermark(wm))
	}
	if c.PageNumbers {
		opts = append(opts, docgen.WithPageNumbers(docgen.PageNumberFormat))
	}
	return opts
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{OutDir: %s, Author: %q, PreviewDelay: %s, Watermark: %q, PageNumbers: %t, LogLevel: %s, Format: %s}",
		c.OutDir, c.Author, c.PreviewDelay, c.Watermark, c.PageNumbers, c.LogLevel, c.Format)
}
