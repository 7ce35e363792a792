// File: internal/config/config.go
package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/caesar-cli/internal/cipher"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Cipher() CipherConfig
	Output() OutputConfig

	SetCipherDefaultShift(int)
	SetOutputFormat(string)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg LoggerConfig `mapstructure:"logger" yaml:"logger"`
	CipherCfg CipherConfig `mapstructure:"cipher" yaml:"cipher"`
	OutputCfg OutputConfig `mapstructure:"output" yaml:"output"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig { return c.LoggerCfg }
func (c *Config) Cipher() CipherConfig { return c.CipherCfg }
func (c *Config) Output() OutputConfig { return c.OutputCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetCipherDefaultShift(s int) { c.CipherCfg.DefaultShift = s }
func (c *Config) SetOutputFormat(f string)    { c.OutputCfg.Format = f }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color settings for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// CipherConfig holds settings for the non-interactive cipher commands.
type CipherConfig struct {
	// DefaultShift is used by encrypt/decrypt when --shift is not given.
	DefaultShift int `mapstructure:"default_shift" yaml:"default_shift"`
}

// OutputConfig controls how subcommands render their results.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// NewDefaultConfig creates a new configuration with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Unmarshal of pure defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// SetDefaults sets the default values for all configuration parameters in Viper.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	// Console logs go to stderr alongside the interactive menu, so keep them quiet.
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "caesar-cli")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Cipher --
	v.SetDefault("cipher.default_shift", 3)

	// -- Output --
	v.SetDefault("output.format", OutputFormatText)
}

// SearchPaths returns the directories scanned for config.yaml when no
// explicit file is given: the working directory, then ~/.caesar.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, filepath.Join(home, ".caesar"))
	}
	return paths
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.LoggerCfg.LogFile != "" {
		expanded, err := homedir.Expand(cfg.LoggerCfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("invalid logger.log_file: %w", err)
		}
		cfg.LoggerCfg.LogFile = expanded
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for logical errors.
func (c *Config) Validate() error {
	if err := cipher.ValidateShift(c.CipherCfg.DefaultShift); err != nil {
		return fmt.Errorf("cipher.default_shift: %w", err)
	}
	switch c.OutputCfg.Format {
	case OutputFormatText, OutputFormatJSON:
	default:
		return fmt.Errorf("output.format must be one of %q or %q, got %q", OutputFormatText, OutputFormatJSON, c.OutputCfg.Format)
	}
	if c.LoggerCfg.LogFile != "" && c.LoggerCfg.MaxSize <= 0 {
		return fmt.Errorf("logger.max_size must be a positive integer when logger.log_file is set")
	}
	return nil
}
