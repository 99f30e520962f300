package web

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/client/services"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/web/config"
	"github.com/gyulist/gyulist/internal/web/session"
)

type App struct {
	logger logging.Logger
	server *Server
}

// NewApp wires the operator services to the API at c.APIURL. Each request
// authenticates with the token session.Guard found in its cookie.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel)

	svc := services.New(client.New(c.APIURL), session.ContextTokens{})
	srv, err := NewServer(c, logger, svc)
	if err != nil {
		return nil, err
	}
	return &App{logger: logger, server: srv}, nil
}

// Run blocks until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting web app...")
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	app.logger.Info(ctx, "Web app stopped")
}
