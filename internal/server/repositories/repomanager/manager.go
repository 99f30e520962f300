package repomanager

import (
	"context"
	"database/sql"

	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/gyulist/gyulist/internal/server/repositories/cattle"
	"github.com/gyulist/gyulist/internal/server/repositories/emaillogs"
	"github.com/gyulist/gyulist/internal/server/repositories/events"
	"github.com/gyulist/gyulist/internal/server/repositories/registrations"
	"github.com/gyulist/gyulist/internal/server/repositories/shipments"
	"github.com/gyulist/gyulist/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB handle (the pool or a
// transaction) and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cattle(db dbx.DBTX) cattle.Repository
	Events(db dbx.DBTX) events.Repository
	Shipments(db dbx.DBTX) shipments.Repository
	Registrations(db dbx.DBTX) registrations.Repository
	EmailLogs(db dbx.DBTX) emaillogs.Repository
}
