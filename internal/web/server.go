// Package web is the server-rendered operator app. Every guarded page runs
// behind session.Guard and calls the API through the operator services
// with the caller's session token.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/web/config"
	"github.com/gyulist/gyulist/internal/web/session"
)

// operator is the subset of services.Service the pages use.
type operator interface {
	Login(ctx context.Context, email, password string) (string, error)
	PreRegister(ctx context.Context, req api.PreRegisterRequest) (*api.PreRegisterResponse, error)
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

type Server struct {
	address         string
	logger          logging.Logger
	svc             operator
	claims          *session.ClaimsReader
	pages           *pages
	loc             *time.Location
	now             func() time.Time
	secureCookies   bool
	sessionMaxAge   time.Duration
	shutdownTimeout time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, svc operator) (*Server, error) {
	loc := cfg.Location()
	p, err := newPages(loc)
	if err != nil {
		return nil, err
	}

	return &Server{
		address:         cfg.HTTPAddr,
		logger:          l.With("module", "web_server"),
		svc:             svc,
		claims:          session.NewClaimsReader(),
		pages:           p,
		loc:             loc,
		now:             time.Now,
		secureCookies:   cfg.SecureCookies,
		sessionMaxAge:   cfg.SessionMaxAge,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get(session.LoginPath, s.loginForm)
	r.Post(session.LoginPath, s.login)
	r.Post("/logout", s.logout)
	r.Get("/logout", s.logout)
	r.Get("/pre-register", s.preRegisterForm)
	r.Post("/pre-register", s.preRegister)

	r.Group(func(r chi.Router) {
		r.Use(session.Guard(session.LoginPath))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/cattle", http.StatusFound)
		})
		r.Get("/cattle", s.cattleList)
		r.Get("/cattle/{id}", s.cattleDetail)
		r.Post("/cattle/{id}/status", s.cattleStatus)
		r.Get("/schedule", s.schedule)
		r.Get("/kpi", s.kpi)
		r.Get("/shipments", s.shipments)
		r.Get("/settings", s.settings)
		r.Post("/settings/theme", s.updateTheme)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Info(ctx, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-runCtx.Done()
		s.logger.Info(ctx, "Stopping web server...")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting web server", "address", listen.Addr().String())

	err = srv.Serve(listen)
	cancel()
	<-stopped

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
