package config

import (
	"time"

	"github.com/gyulist/gyulist/internal/flagx"
	"github.com/gyulist/gyulist/internal/timex"
)

// FileConfig is the on-disk shape of the server config, JSON or YAML.
// Durations accept "24h" style strings or integer nanoseconds. Zero values
// leave the current setting alone.
type FileConfig struct {
	HTTPAddr              string         `json:"http_addr" yaml:"http_addr"`
	DatabaseDriver        string         `json:"database_driver" yaml:"database_driver"`
	DatabaseDSN           string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey             string         `json:"secret_key" yaml:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration" yaml:"token_validity_duration"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowedOrigins        []string       `json:"allowed_origins" yaml:"allowed_origins"`
	AdminUser             string         `json:"admin_user" yaml:"admin_user"`
	LogLevel              string         `json:"log_level" yaml:"log_level"`
	LogFormat             string         `json:"log_format" yaml:"log_format"`
	Mail                  *FileMail      `json:"mail" yaml:"mail"`
}

type FileMail struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	From     string `json:"from" yaml:"from"`
	Region   string `json:"region" yaml:"region"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	AppURL   string `json:"app_url" yaml:"app_url"`
}

// parseFile loads the file named by -c/-config, if any, over config.
// An unreadable or invalid file panics, like a bad flag does.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	c := &FileConfig{}
	if err := flagx.DecodeFile(path, c); err != nil {
		panic(err)
	}
	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AdminUser, c.AdminUser)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setDuration(&config.TokenValidityDuration, c.TokenValidityDuration)
	setDuration(&config.ShutdownTimeout, c.ShutdownTimeout)
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if m := c.Mail; m != nil {
		config.Mail.Enabled = m.Enabled
		setString(&config.Mail.From, m.From)
		setString(&config.Mail.Region, m.Region)
		setString(&config.Mail.Endpoint, m.Endpoint)
		setString(&config.Mail.AppURL, m.AppURL)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
