// Package httpapi exposes the gyulist services as a JSON API under /api/v1.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gyulist/gyulist/internal/api"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/gyulist/gyulist/internal/server/config"
)

// Services bundles the business logic the handlers call into.
type Services struct {
	Users         userSvc
	Cattle        cattleSvc
	Events        eventSvc
	KPI           kpiSvc
	Shipments     shipmentSvc
	Registrations registrationSvc
}

type Server struct {
	address         string
	logger          logging.Logger
	users           userSvc
	cattle          cattleSvc
	events          eventSvc
	kpi             kpiSvc
	shipments       shipmentSvc
	registrations   registrationSvc
	adminUser       string
	adminPassword   string
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

func NewServer(cfg *config.Config, l logging.Logger, svc Services) *Server {
	return &Server{
		address:         cfg.HTTPAddr,
		logger:          l.With("module", "http_server"),
		users:           svc.Users,
		cattle:          svc.Cattle,
		events:          svc.Events,
		kpi:             svc.KPI,
		shipments:       svc.Shipments,
		registrations:   svc.Registrations,
		adminUser:       cfg.AdminUser,
		adminPassword:   cfg.AdminPassword,
		allowedOrigins:  cfg.AllowedOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get(api.RouteHealth, s.health)

	r.Post(api.RouteAuthRegister, s.register)
	r.Post(api.RouteAuthLogin, s.login)
	r.Post(api.RouteAuthVerify, s.verify)
	r.Post(api.RoutePreRegister, s.preRegister)

	r.Group(func(r chi.Router) {
		r.Use(s.requireBearer)

		r.Get(api.RouteUser, s.getUser)
		r.Patch(api.RouteUserTheme, s.updateTheme)

		r.Get(api.RouteCattle, s.listCattle)
		r.Post(api.RouteCattle, s.createCattle)
		r.Get(api.RouteCattleItem, s.getCattle)
		r.Patch(api.RouteCattleItem, s.updateCattle)
		r.Delete(api.RouteCattleItem, s.deleteCattle)
		r.Patch(api.RouteCattleStatus, s.updateCattleStatus)
		r.Get(api.RouteCattleHistory, s.cattleHistory)

		r.Get(api.RouteEvents, s.listEvents)
		r.Post(api.RouteEvents, s.createEvent)
		r.Delete(api.RouteEventItem, s.deleteEvent)

		r.Get(api.RouteBreedingKPI, s.breedingKPI)

		r.Get(api.RouteShipments, s.listShipments)
		r.Post(api.RouteShipments, s.createShipment)
		r.Delete(api.RouteShipmentItem, s.deleteShipment)
		r.Get(api.RouteShipmentPlans, s.listPlans)
		r.Put(api.RouteShipmentPlan, s.putPlan)
		r.Delete(api.RouteShipmentPlan, s.deletePlan)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)

		r.Get(api.RouteAdminRegs, s.listRegistrations)
		r.Patch(api.RouteAdminRegStatus, s.updateRegistrationStatus)
		r.Get(api.RouteAdminEmailLogs, s.listEmailLogs)
	})

	return r
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
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	err = srv.Serve(listen)
	cancel()
	<-stopped

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
