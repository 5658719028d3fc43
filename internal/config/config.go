package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Seeds  SeedConfig   `yaml:"seeds"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP listen address, e.g. ":8080"
}

type RedisConfig struct {
	Addr       string `yaml:"addr"` // empty disables the assessment cache
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type SeedConfig struct {
	Jurisdictions string `yaml:"jurisdictions"`
	Segments      string `yaml:"segments"`
	Vehicles      string `yaml:"vehicles"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("load config: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("load config: parse %q: %w", path, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Redis.TTLMinutes == 0 {
		cfg.Redis.TTLMinutes = 15
	}
	if cfg.Seeds.Jurisdictions == "" {
		cfg.Seeds.Jurisdictions = "data/seeds/jurisdictions.yaml"
	}
	if cfg.Seeds.Segments == "" {
		cfg.Seeds.Segments = "data/seeds/segments.yaml"
	}
	if cfg.Seeds.Vehicles == "" {
		cfg.Seeds.Vehicles = "data/seeds/vehicles.json"
	}
}

// Get returns the value of an environment variable or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
