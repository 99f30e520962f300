package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gyulist/gyulist/internal/client/migrations"
	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations brings the CLI's local store up to date. goose output is
// silenced so it does not interleave with the REPL.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dbx.DialectSQLite.GooseDialect()); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate local store: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite file at path, creating it when missing,
// and migrates it. The store is used through a single connection.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(dbx.DialectSQLite.DriverName(), path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
