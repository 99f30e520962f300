// Package config loads runtime configuration for the gyulist CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file given with -c or -config.
//  3. Command-line flags -a (server URL) and -db (local database file).
//
// Example YAML:
//
//	server_url: https://api.gyulist.com
//	database_path: /home/op/.gyulist.db
package config
