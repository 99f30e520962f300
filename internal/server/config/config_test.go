package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8787", c.HTTPAddr)
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowedOrigins)
	assert.Equal(t, "admin", c.AdminUser)
	assert.False(t, c.Mail.Enabled)
	assert.Equal(t, "ap-northeast-1", c.Mail.Region)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}

	for _, k := range []string{"JWT_SECRET", "DATABASE_DSN", "DATABASE_DRIVER", "ADMIN_PASSWORD", "ALLOWED_ORIGINS",
		"AWS_SES_FROM", "D1_BINDING_NAME", "D1_DATABASE_NAME", "D1_MIGRATIONS_DIR"} {
		unsetEnv(t, k)
	}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, ":8787", c.HTTPAddr)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, D1Config{BindingName: "DB", DatabaseName: "gyulist-db", MigrationsDir: "drizzle/migrations"}, c.D1)
	assert.Equal(t, "file:gyulist-db.sqlite", c.DSN())
}

func TestDSN(t *testing.T) {
	c := &Config{D1: D1Config{DatabaseName: "herd"}}
	assert.Equal(t, "file:herd.sqlite", c.DSN())

	c.DatabaseDSN = "postgres://localhost/gyulist"
	assert.Equal(t, "postgres://localhost/gyulist", c.DSN())
}

// unsetEnv removes key for the duration of the test and restores it after.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
