package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend struct {
		BaseURL         string `yaml:"base_url"`
		APIKey          string `yaml:"api_key"`
		OrganizationID  string `yaml:"organization_id"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"backend"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	Booking struct {
		FetchMonths     int    `yaml:"fetch_months"`
		MaxCandidates   int    `yaml:"max_candidates"`
		RebuildInterval int    `yaml:"rebuild_interval_minutes"`
		Timezone        string `yaml:"timezone"`
	} `yaml:"booking"`

	SlotsConfigPath string `yaml:"slots_config_path"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Booking.FetchMonths <= 0 {
		cfg.Booking.FetchMonths = 6
	}
	if cfg.Booking.MaxCandidates <= 0 {
		cfg.Booking.MaxCandidates = 6
	}
	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "Asia/Tokyo"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.SlotsConfigPath == "" {
		cfg.SlotsConfigPath = "configs/slots.yaml"
	}

	return &cfg, nil
}

func (c *Config) CacheTTL() time.Duration {
	if c.Backend.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Backend.CacheTTLSeconds) * time.Second
}

func (c *Config) RebuildInterval() time.Duration {
	if c.Booking.RebuildInterval <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.Booking.RebuildInterval) * time.Minute
}
