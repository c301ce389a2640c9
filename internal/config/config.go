package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/xxxsen/common/logger"
)

const (
	defaultBaseURL     = "http://localhost:8000"
	defaultPort        = 8090
	defaultHistorySize = 50
	defaultHistoryTTL  = 3600
)

type Config struct {
	BaseURL               string           `json:"base_url"`
	Port                  int              `json:"port"`
	RequestTimeoutSeconds int              `json:"request_timeout_seconds"`
	LogConfig             logger.LogConfig `json:"log_config"`
	History               HistoryConfig    `json:"history"`
	Probe                 ProbeConfig      `json:"probe"`
	CORSAllowOrigins      []string         `json:"cors_allow_origins"`
}

type HistoryConfig struct {
	Size       int `json:"size"`
	TTLSeconds int `json:"ttl_seconds"`
}

// ProbeConfig schedules the backend reachability check. Empty Spec disables it.
type ProbeConfig struct {
	Spec string `json:"spec"`
}

type envOverrides struct {
	BaseURL  string `env:"QUIZDESK_BASE_URL"`
	Port     int    `env:"QUIZDESK_PORT"`
	LogLevel string `env:"QUIZDESK_LOG_LEVEL"`
}

// Load reads the JSON config at path. An empty path yields the defaults.
// Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.BaseURL != "" {
		cfg.BaseURL = overrides.BaseURL
	}
	if overrides.Port != 0 {
		cfg.Port = overrides.Port
	}
	if overrides.LogLevel != "" {
		cfg.LogConfig.Level = overrides.LogLevel
	}
	return nil
}

func (c *Config) normalize() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if err := ValidateBaseURL(c.BaseURL); err != nil {
		return err
	}
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must not be negative")
	}
	if c.LogConfig.Level == "" {
		c.LogConfig.Level = "info"
	}
	if c.History.Size <= 0 {
		c.History.Size = defaultHistorySize
	}
	if c.History.TTLSeconds <= 0 {
		c.History.TTLSeconds = defaultHistoryTTL
	}
	c.Probe.Spec = strings.TrimSpace(c.Probe.Spec)
	return nil
}

func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("base_url host is required")
	}
	return nil
}
