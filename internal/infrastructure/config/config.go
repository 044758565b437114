package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables that override configuration.
	EnvPrefix = "RESISTORS"
	// ConfigFileEnv names an explicit config file that replaces the search path.
	ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"
)

// Supported values for validated settings
var (
	supportedLogFormats    = []string{"console", "json"}
	supportedReportFormats = []string{"text", "json", "yaml"}
)

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Log    LogConfig
	Random RandomConfig
	Report ReportConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stderr, stdout, or file path
}

// RandomConfig holds settings for the process-wide random source
type RandomConfig struct {
	Seed uint64 // 0 seeds from the clock
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Format string // text, json, yaml
}

// Load loads configuration from a TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with RESISTORS_ prefix (e.g., RESISTORS_RANDOM_SEED)
// 2. The file named by RESISTORS_CONFIG_FILE, or config.toml in ., ./configs
// or /etc/resistors
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	if err := readConfig(v); err != nil {
		return nil, err
	}

	cfg := fromViper(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithFallback loads configuration like Load but never fails. An unreadable
// file is skipped and every invalid setting is replaced by its default, leaving
// the valid ones in place. The returned error describes what was discarded.
func LoadWithFallback() (*Config, error) {
	v := viper.New()
	fileErr := readConfig(v)
	if fileErr != nil {
		// Environment overrides still apply
		v = viper.New()
	}

	cfg := fromViper(v)
	return cfg, errors.Join(fileErr, cfg.resetInvalid())
}

// readConfig reads the file named by ConfigFileEnv, or searches the standard
// locations. A missing searched file is not an error.
func readConfig(v *viper.Viper) error {
	v.SetConfigType("toml")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/resistors")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Defaults and env vars still apply
	}
	return nil
}

func fromViper(v *viper.Viper) *Config {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Random: RandomConfig{
			Seed: v.GetUint64("random.seed"),
		},
		Report: ReportConfig{
			Format: v.GetString("report.format"),
		},
	}

	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "resistors"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.IsProduction() {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = "text"
	}
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Report.Format = strings.ToLower(cfg.Report.Format)
	// Random.Seed stays 0 so the source is seeded from the clock
}

// validate reports every invalid setting
func (c *Config) validate() error {
	return errors.Join(c.checkLogFormat(), c.checkReportFormat())
}

// resetInvalid clears each invalid setting back to its default and reports what
// was cleared
func (c *Config) resetInvalid() error {
	var errs []error
	if err := c.checkLogFormat(); err != nil {
		errs = append(errs, err)
		c.Log.Format = ""
	}
	if err := c.checkReportFormat(); err != nil {
		errs = append(errs, err)
		c.Report.Format = ""
	}
	applyDefaults(c)
	return errors.Join(errs...)
}

func (c *Config) checkLogFormat() error {
	if !slices.Contains(supportedLogFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v, got %q", supportedLogFormats, c.Log.Format)
	}
	return nil
}

func (c *Config) checkReportFormat() error {
	if !slices.Contains(supportedReportFormats, c.Report.Format) {
		return fmt.Errorf("report.format must be one of %v, got %q", supportedReportFormats, c.Report.Format)
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}
