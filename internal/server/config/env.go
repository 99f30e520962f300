package config

import (
	"os"
	"strings"
)

// parseEnv applies secrets and deployment overrides, which are kept out of
// config files and command lines.
//
//	JWT_SECRET          token signing key
//	DATABASE_DSN        database DSN
//	DATABASE_DRIVER     sqlite | pgx
//	ADMIN_PASSWORD      admin API basic-auth password
//	ALLOWED_ORIGINS     comma separated CORS origins
//	AWS_SES_FROM        sender address; setting it enables SES delivery
func parseEnv(c *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.DatabaseDSN = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.DatabaseDriver = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("AWS_SES_FROM"); v != "" {
		c.Mail.From = v
		c.Mail.Enabled = true
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
