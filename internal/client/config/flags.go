package config

import (
	"flag"
	"os"

	"github.com/gyulist/gyulist/internal/flagx"
)

// parseFlags populates Config from command-line flags:
//
//	-a string    base URL of the API server
//	-db string   path of the local SQLite file
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-db"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "API server base URL")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
