package config

import "os"

const (
	DefaultD1BindingName   = "DB"
	DefaultD1DatabaseName  = "gyulist-db"
	DefaultD1MigrationsDir = "drizzle/migrations"
)

// D1Config names the database the server works against. DatabaseName
// derives the default SQLite file, MigrationsDir overrides the embedded
// migrations when it exists, BindingName tags the database in logs.
type D1Config struct {
	BindingName   string
	DatabaseName  string
	MigrationsDir string
}

// LoadD1EnvironmentConfig reads D1_BINDING_NAME, D1_DATABASE_NAME and
// D1_MIGRATIONS_DIR. Unset variables take the defaults; set values, even
// empty ones, are used verbatim.
func LoadD1EnvironmentConfig() D1Config {
	return loadD1(os.LookupEnv)
}

func loadD1(lookup func(string) (string, bool)) D1Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return def
	}

	return D1Config{
		BindingName:   get("D1_BINDING_NAME", DefaultD1BindingName),
		DatabaseName:  get("D1_DATABASE_NAME", DefaultD1DatabaseName),
		MigrationsDir: get("D1_MIGRATIONS_DIR", DefaultD1MigrationsDir),
	}
}
