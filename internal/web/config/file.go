package config

import (
	"github.com/gyulist/gyulist/internal/flagx"
	"github.com/gyulist/gyulist/internal/timex"
)

type FileConfig struct {
	HTTPAddr        string          `json:"http_addr" yaml:"http_addr"`
	APIURL          string          `json:"api_url" yaml:"api_url"`
	SecureCookies   *bool           `json:"secure_cookies" yaml:"secure_cookies"`
	SessionMaxAge   *timex.Duration `json:"session_max_age" yaml:"session_max_age"`
	TimeZone        string          `json:"time_zone" yaml:"time_zone"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel        string          `json:"log_level" yaml:"log_level"`
	LogFormat       string          `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config. Absent fields
// keep their current value. A bad file panics.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := flagx.DecodeFile(path, &fc); err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.HTTPAddr != "" {
		cfg.HTTPAddr = fc.HTTPAddr
	}
	if fc.APIURL != "" {
		cfg.APIURL = fc.APIURL
	}
	if fc.SecureCookies != nil {
		cfg.SecureCookies = *fc.SecureCookies
	}
	if fc.SessionMaxAge != nil {
		cfg.SessionMaxAge = fc.SessionMaxAge.Duration
	}
	if fc.TimeZone != "" {
		cfg.TimeZone = fc.TimeZone
	}
	if fc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
}
