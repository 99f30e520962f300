// Package config handles configuration for the API server: defaults, the
// D1 environment, an optional JSON/YAML file overlay, command-line flags and
// finally secret overrides from the environment (optionally via .env).
package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the gyulist API server.
type Config struct {
	HTTPAddr              string
	DatabaseDriver        string
	DatabaseDSN           string
	D1                    D1Config
	SecretKey             string
	TokenValidityDuration time.Duration
	ShutdownTimeout       time.Duration
	AllowedOrigins        []string
	AdminUser             string
	AdminPassword         string
	LogLevel              string
	LogFormat             string
	Mail                  MailConfig
}

// MailConfig configures the SES sender used for pre-registration email.
// When Enabled is false the server logs messages instead of sending them.
type MailConfig struct {
	Enabled         bool
	From            string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	AppURL          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey and AdminPassword are insecure and must be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8787"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.ShutdownTimeout = 10 * time.Second
	c.AllowedOrigins = []string{"http://localhost:3000"}
	c.AdminUser = "admin"
	c.AdminPassword = "admin"
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.Mail = MailConfig{
		Enabled: false,
		From:    "no-reply@gyulist.com",
		Region:  "ap-northeast-1",
		AppURL:  "http://localhost:3000",
	}
}

// DSN is the configured DSN, or the SQLite file named after the D1 database.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return "file:" + c.D1.DatabaseName + ".sqlite"
}

// LoadConfig builds a Config by applying defaults and the D1 environment,
// then overlaying values from an optional config file, command-line flags
// and secret environment variables.
func LoadConfig() *Config {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.D1 = LoadD1EnvironmentConfig()
	parseFile(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
