// Package server wires configuration, storage, mail delivery and the HTTP
// API into a runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gyulist/gyulist/internal/dbx"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/server/config"
	"github.com/gyulist/gyulist/internal/server/httpapi"
	"github.com/gyulist/gyulist/internal/server/mailer"
	"github.com/gyulist/gyulist/internal/server/repositories/repomanager"
	"github.com/gyulist/gyulist/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services httpapi.Services
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel).With("d1", c.D1.BindingName)

	dialect, err := dbx.ParseDialect(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, m, err := repomanager.Open(dialect, c.DSN(), c.D1.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	sender, err := newSender(ctx, c, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mailer init error: %w", err)
	}

	svc := httpapi.Services{
		Users:         services.NewUserService(db, m, c),
		Cattle:        services.NewCattleService(db, m),
		Events:        services.NewEventService(db, m),
		KPI:           services.NewKPIService(db, m),
		Shipments:     services.NewShipmentService(db, m),
		Registrations: services.NewRegistrationService(db, m, sender, mailer.NewTemplates(c.Mail.AppURL), logger),
	}

	return &App{config: c, logger: logger, db: db, services: svc}, nil
}

func newSender(ctx context.Context, c *config.Config, logger logging.Logger) (mailer.Sender, error) {
	if !c.Mail.Enabled {
		return mailer.NewLogSender(logger), nil
	}
	return mailer.NewSESSender(ctx, c.Mail)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config, app.logger, app.services)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
