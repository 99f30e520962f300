package config

import (
	"flag"
	"os"

	"github.com/gyulist/gyulist/internal/flagx"
)

// parseFlags populates Config from command-line flags:
//
//	-a string     HTTP bind address
//	-api string   base URL of the API server
//	-tz string    time zone for displayed dates
//	-l string     log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-api", "-tz", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port to run the web app")
	fs.StringVar(&cfg.APIURL, "api", cfg.APIURL, "API server base URL")
	fs.StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "display time zone")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
