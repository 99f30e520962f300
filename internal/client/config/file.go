package config

import "github.com/gyulist/gyulist/internal/flagx"

// FileConfig is the on-disk shape of the CLI config, JSON or YAML.
type FileConfig struct {
	ServerURL    string `json:"server_url" yaml:"server_url"`
	DatabasePath string `json:"database_path" yaml:"database_path"`
}

// parseFile overlays cfg with the file named by -c/-config. Empty fields
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

	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
}
