package config

// Config holds runtime settings for the gyulist CLI.
type Config struct {
	ServerURL    string
	DatabasePath string
}

// LoadDefaults points the CLI at a local API server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8787"
	c.DatabasePath = "gyulist-cli.db"
}

// LoadConfig applies defaults, then the optional config file, then flags.
// Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
