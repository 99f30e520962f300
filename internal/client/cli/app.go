package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/client/client"
	"github.com/gyulist/gyulist/internal/client/config"
	"github.com/gyulist/gyulist/internal/client/repositories/metadata"
	"github.com/gyulist/gyulist/internal/client/services"
	"github.com/gyulist/gyulist/internal/filex"
	"github.com/gyulist/gyulist/internal/web/session"
)

// operator is the part of services.Service the commands call.
type operator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, userName string) (int64, error)
	Verify(ctx context.Context, token string) (*api.VerifyResponse, error)
	GetUser(ctx context.Context, id int64) (*api.User, error)
	UpdateTheme(ctx context.Context, id int64, theme string) (*api.ThemeData, error)
	ListCattle(ctx context.Context, q api.CattleListQuery) (*api.Page[api.Cattle], error)
	GetCattle(ctx context.Context, id int64) (*api.Cattle, error)
	CattleHistory(ctx context.Context, id int64) ([]api.StatusHistory, error)
	UpdateCattleStatus(ctx context.Context, id int64, status, reason string) (*api.Cattle, error)
	ListEvents(ctx context.Context, q api.EventListQuery) ([]api.Event, error)
	BreedingKPI(ctx context.Context, from, to string) (*api.BreedingKPIResponse, error)
	ListShipments(ctx context.Context, q api.ShipmentListQuery) (*api.Page[api.Shipment], error)
	ListPlans(ctx context.Context) ([]api.ShipmentPlan, error)
}

// tokenStore persists the session token between runs.
type tokenStore interface {
	client.TokenSource
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type App struct {
	config   *config.Config
	db       *sql.DB
	svc      operator
	tokens   tokenStore
	claims   *session.ClaimsReader
	reader   *bufio.Reader
	out      io.Writer
	clock    func() time.Time
	userName string
}

// NewApp opens the local database and connects the services to the API
// server named in c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	path, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	tokens := services.NewTokenStore(metadata.NewSQLiteRepository(db))
	svc := services.New(client.New(c.ServerURL), tokens)

	return &App{
		config: c,
		db:     db,
		svc:    svc,
		tokens: tokens,
		claims: session.NewClaimsReader(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and closes the local database when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintf(a.out, "gyulist CLI, server %s (type 'help' for commands)\n", a.config.ServerURL)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, &readerLines{r: a.reader})
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, err := a.tokens.Token(ctx)
	return err == nil
}

func (a *App) getStatus(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return ""
	}
	if a.userName != "" {
		return "(" + a.userName + ")"
	}
	return "(logged in)"
}

// checked forgets a token the server no longer accepts.
func (a *App) checked(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		a.userName = ""
		_ = a.tokens.Clear(ctx)
	}
	return err
}
