package config

import (
	"os"
	"strconv"
)

// parseEnv applies deployment overrides:
//
//	API_URL          API server base URL
//	COOKIE_SECURE    "true" marks the session cookie Secure
func parseEnv(c *Config) {
	if v := os.Getenv("API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.SecureCookies = b
		}
	}
}
