package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go-simpler.org/env"
)

// ConfigFileEnv names the variable holding an optional TOML config path.
const ConfigFileEnv = "DEVTOOLS_CONFIG"

type Config struct {
	Addr            string
	AppEnv          string
	LogLevel        string
	LogFormat       string
	CORSOrigins     []string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		AppEnv:          "development",
		LogLevel:        "info",
		LogFormat:       "console",
		CORSOrigins:     []string{"*"},
		MetricsEnabled:  true,
		ShutdownTimeout: 10 * time.Second,
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

type fileConfig struct {
	Addr            string   `toml:"addr"`
	AppEnv          string   `toml:"app_env"`
	LogLevel        string   `toml:"log_level"`
	LogFormat       string   `toml:"log_format"`
	CORSOrigins     []string `toml:"cors_origins"`
	MetricsEnabled  bool     `toml:"metrics_enabled"`
	ShutdownTimeout string   `toml:"shutdown_timeout"`
}

type envConfig struct {
	Port            string `env:"PORT"`
	AppEnv          string `env:"APP_ENV"`
	LogLevel        string `env:"LOG_LEVEL"`
	LogFormat       string `env:"LOG_FORMAT"`
	CORSOrigins     string `env:"CORS_ORIGINS"`
	MetricsEnabled  string `env:"METRICS_ENABLED"`
	ShutdownTimeout string `env:"SHUTDOWN_TIMEOUT"`
}

// Load layers defaults, the optional TOML file named by DEVTOOLS_CONFIG and
// environment variables, in that order. A .env file is read first if present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := Default()
	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config file: %w", err)
	}

	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("app_env") {
		cfg.AppEnv = strings.TrimSpace(raw.AppEnv)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CORSOrigins = normalizeOrigins(raw.CORSOrigins)
	}
	if meta.IsDefined("metrics_enabled") {
		cfg.MetricsEnabled = raw.MetricsEnabled
	}
	if meta.IsDefined("shutdown_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ShutdownTimeout))
		if err != nil {
			return fmt.Errorf("parse shutdown_timeout: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var e envConfig
	if err := env.Load(&e, nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}

	if e.Port != "" {
		cfg.Addr = ":" + strings.TrimPrefix(e.Port, ":")
	}
	if e.AppEnv != "" {
		cfg.AppEnv = e.AppEnv
	}
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}
	if e.LogFormat != "" {
		cfg.LogFormat = e.LogFormat
	}
	if e.CORSOrigins != "" {
		cfg.CORSOrigins = normalizeOrigins(strings.Split(e.CORSOrigins, ","))
	}
	if e.MetricsEnabled != "" {
		v, err := strconv.ParseBool(e.MetricsEnabled)
		if err != nil {
			return fmt.Errorf("METRICS_ENABLED must be a boolean: %w", err)
		}
		cfg.MetricsEnabled = v
	}
	if e.ShutdownTimeout != "" {
		d, err := time.ParseDuration(e.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT must be a duration: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

func validate(cfg Config) error {
	_, port, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		return fmt.Errorf("addr %q must be host:port: %w", cfg.Addr, err)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("port %q must be a number between 0 and 65535", port)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	if len(cfg.CORSOrigins) == 0 {
		return errors.New("at least one CORS origin is required")
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if v := strings.TrimSpace(o); v != "" {
			out = append(out, v)
		}
	}
	return out
}
