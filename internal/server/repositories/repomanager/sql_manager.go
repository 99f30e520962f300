// Package repomanager provides the RepositoryManager for SQLite and
// PostgreSQL, wiring together repository constructors and database
// migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"io/fs"
	"os"

	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/gyulist/gyulist/internal/server/migrations"
	"github.com/gyulist/gyulist/internal/server/repositories/cattle"
	"github.com/gyulist/gyulist/internal/server/repositories/emaillogs"
	"github.com/gyulist/gyulist/internal/server/repositories/events"
	"github.com/gyulist/gyulist/internal/server/repositories/registrations"
	"github.com/gyulist/gyulist/internal/server/repositories/shipments"
	"github.com/gyulist/gyulist/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager binds every repository to the configured dialect so
// repository SQL can be written once with '?' placeholders.
type SQLRepositoryManager struct {
	dialect       dbx.Dialect
	migrationsDir string
}

func (m *SQLRepositoryManager) bind(db dbx.DBTX) dbx.DBTX {
	return dbx.Bind(db, m.dialect)
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(m.bind(db))
}

func (m *SQLRepositoryManager) Cattle(db dbx.DBTX) cattle.Repository {
	return cattle.NewSQLRepository(m.bind(db))
}

func (m *SQLRepositoryManager) Events(db dbx.DBTX) events.Repository {
	return events.NewSQLRepository(m.bind(db))
}

func (m *SQLRepositoryManager) Shipments(db dbx.DBTX) shipments.Repository {
	return shipments.NewSQLRepository(m.bind(db))
}

func (m *SQLRepositoryManager) Registrations(db dbx.DBTX) registrations.Repository {
	return registrations.NewSQLRepository(m.bind(db))
}

func (m *SQLRepositoryManager) EmailLogs(db dbx.DBTX) emaillogs.Repository {
	return emaillogs.NewSQLRepository(m.bind(db))
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// migrationSource picks the on-disk directory when it exists and the
// embedded tree for the dialect otherwise.
func (m *SQLRepositoryManager) migrationSource() (fs.FS, error) {
	if m.migrationsDir != "" {
		if st, err := os.Stat(m.migrationsDir); err == nil && st.IsDir() {
			return os.DirFS(m.migrationsDir), nil
		}
	}
	return migrations.For(m.dialect)
}

// RunMigrations points goose at the migration source and applies all
// pending migrations.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	src, err := m.migrationSource()
	if err != nil {
		return err
	}

	goose.SetBaseFS(src)
	if err := goose.SetDialect(m.dialect.GooseDialect()); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Open opens the database for the dialect and returns it with a manager.
func Open(dialect dbx.Dialect, dsn, migrationsDir string) (*sql.DB, RepositoryManager, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, nil, err
	}
	if dialect == dbx.DialectSQLite {
		// one writer at a time for SQLite
		db.SetMaxOpenConns(1)
		if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return db, NewSQLRepositoryManager(dialect, migrationsDir), nil
}

func NewSQLRepositoryManager(dialect dbx.Dialect, migrationsDir string) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dialect, migrationsDir: migrationsDir}
}
