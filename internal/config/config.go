// Package config loads restcall settings from a config file, a .env file and
// RESTCALL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RESTCALL"

// Config holds restcall settings.
type Config struct {
	BaseURI string        `mapstructure:"base_uri" validate:"required,uri"`
	Auth    string        `mapstructure:"auth" validate:"oneof=none basic bearer"`
	Secret  string        `mapstructure:"secret"`
	Login   string        `mapstructure:"login"`
	Method  string        `mapstructure:"method" validate:"required,alpha"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Verbose bool          `mapstructure:"verbose"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Auth:    "none",
		Method:  "GET",
		Timeout: 30 * time.Second,
	}
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// Load reads settings in increasing precedence: defaults, config file, .env
// file, process environment. Missing files are not an error when their path
// was not given explicitly.
func Load(lc LoaderConfig) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("base_uri", cfg.BaseURI)
	v.SetDefault("auth", cfg.Auth)
	v.SetDefault("secret", cfg.Secret)
	v.SetDefault("login", cfg.Login)
	v.SetDefault("method", cfg.Method)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("verbose", cfg.Verbose)

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", lc.ConfigFile, err)
		}
	}

	if err := loadEnvFile(lc.EnvFile); err != nil {
		return cfg, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Auth = strings.ToLower(strings.TrimSpace(cfg.Auth))
	cfg.Method = strings.ToUpper(strings.TrimSpace(cfg.Method))

	return cfg, nil
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. An empty path tries ./.env.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: failed %q check", strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Secret != "" {
		c.Secret = "*****"
	}
	return c
}
