package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds runtime configuration: defaults, overlaid by configs/base.yaml,
// an optional per-environment yaml, and SHOPAPI_-prefixed environment
// variables (nested keys joined with __, e.g. SHOPAPI_APP__HTTP_ADDR).
type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout     time.Duration `koanf:"read_timeout"`
		WriteTimeout    time.Duration `koanf:"write_timeout"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	} `koanf:"http"`

	Auth struct {
		TokenTTL time.Duration `koanf:"token_ttl"`
	} `koanf:"auth"`

	Seed struct {
		Demo bool `koanf:"demo"`
	} `koanf:"seed"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	var cfg Config
	cfg.App.Name = "shopapi"
	cfg.App.HTTPAddr = ":8080"
	cfg.App.LogLevel = "info"
	cfg.App.LogFile = "./logs/app.log"
	cfg.HTTP.ReadTimeout = 5 * time.Second
	cfg.HTTP.WriteTimeout = 10 * time.Second
	cfg.HTTP.ShutdownTimeout = 10 * time.Second
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Seed.Demo = true
	return cfg
}

// Load reads configuration from pathDir. base.yaml is optional so that the
// binary also runs without a configs directory; the env overlay always applies.
func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")

	base := fmt.Sprintf("%s/base.yaml", pathDir)
	if _, err := os.Stat(base); err == nil {
		if err := k.Load(file.Provider(base), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load base: %w", err)
		}
	}
	if envName != "" {
		_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())
	}

	if err := k.Load(env.Provider("SHOPAPI_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "SHOPAPI_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	return nil
}
