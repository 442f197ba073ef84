package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const (
	defaultListen   = ":8080"
	defaultTimeZone = "UTC"
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL    string `yaml:"db_url"`
	Listen   string `yaml:"listen"`
	Debug    bool   `yaml:"debug"`
	TimeZone string `yaml:"time_zone"`

	// Operators maps operator name -> API key in the config file.
	Operators map[string]string `yaml:"operators"`

	APIKeys map[string]string `yaml:"-"` // apiKey -> operator
}

// Load reads the optional YAML file at path, then applies environment
// overrides. An empty path skips the file.
//
// Environment: DB_URL, LISTEN_ADDR, DEBUG, TIME_ZONE and
// API_KEYS in the form "operator1:key1,operator2:key2".
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("DB_URL")); v != "" {
		cfg.DBURL = v
	}
	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.Listen = v
	}
	if v := strings.TrimSpace(os.Getenv("TIME_ZONE")); v != "" {
		cfg.TimeZone = v
	}
	if v := strings.TrimSpace(os.Getenv("DEBUG")); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("DEBUG must be a boolean: %w", err)
		}
		cfg.Debug = debug
	}

	cfg.APIKeys = map[string]string{}
	for operator, key := range cfg.Operators {
		operator, key = strings.TrimSpace(operator), strings.TrimSpace(key)
		if operator == "" || key == "" {
			return Config{}, errors.New("operators entries need a name and a key")
		}
		cfg.APIKeys[key] = operator
	}

	keys, err := parseAPIKeys(os.Getenv("API_KEYS"))
	if err != nil {
		return Config{}, err
	}
	for k, op := range keys {
		cfg.APIKeys[k] = op
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize fills defaults and checks required values.
func (c *Config) normalize() error {
	if c.DBURL == "" {
		return errors.New("DB_URL required")
	}
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if c.TimeZone == "" {
		c.TimeZone = defaultTimeZone
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("time zone %q: %w", c.TimeZone, err)
	}

	// Local dev fallback so the service runs out-of-the-box.
	if len(c.APIKeys) == 0 {
		c.APIKeys = map[string]string{"admin-key-123": "admin"}
	}
	return nil
}

// Location returns the configured time zone. Load has already validated it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseAPIKeys(raw string) (map[string]string, error) {
	out := map[string]string{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return out, nil
	}

	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts := strings.SplitN(p, ":", 2)
		if len(parts) != 2 {
			return nil, errors.New(`API_KEYS must be "operator:key,operator:key"`)
		}
		operator := strings.TrimSpace(parts[0])
		key := strings.TrimSpace(parts[1])
		if operator == "" || key == "" {
			return nil, errors.New(`API_KEYS must be "operator:key,operator:key"`)
		}
		out[key] = operator
	}
	return out, nil
}
