// Package migrations embeds the goose SQL migrations of the API server,
// one directory per SQL dialect.
package migrations

import (
	"embed"
	"io/fs"

	"github.com/gyulist/gyulist/internal/dbx"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// For returns the migration tree for the dialect, rooted at its directory.
func For(d dbx.Dialect) (fs.FS, error) {
	if d == dbx.DialectPostgres {
		return fs.Sub(Migrations, "postgres")
	}
	return fs.Sub(Migrations, "sqlite")
}
