// Package config loads settings for the operator web app. Sources are
// applied in order: defaults, an optional JSON/YAML file (-c/-config),
// command-line flags, then the environment (optionally via .env).
package config

import (
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	APIURL          string
	SecureCookies   bool
	SessionMaxAge   time.Duration
	TimeZone        string
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
}

func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":3000"
	c.APIURL = "http://127.0.0.1:8787"
	c.SecureCookies = false
	c.SessionMaxAge = 24 * time.Hour
	c.TimeZone = "Asia/Tokyo"
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
