package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/cimillas/ticket-booking/internal/app"
	"github.com/cimillas/ticket-booking/internal/clock"
	"github.com/cimillas/ticket-booking/internal/config"
	"github.com/cimillas/ticket-booking/internal/storage/postgres"
	transporthttp "github.com/cimillas/ticket-booking/internal/transport/http"
	"github.com/cimillas/ticket-booking/migrations"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("connect to db")
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		log.WithError(err).Fatal("db ping")
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		log.WithError(err).Fatal("apply migrations")
	}

	bookingRepo := postgres.NewBookingRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	bookingSvc := app.NewBookingService(bookingRepo, clock.NewSystem(), log)
	cancelSvc := app.NewCancellationService(ticketRepo, log)
	querySvc := app.NewQueryService(ticketRepo)
	adminSvc := app.NewAdminService(adminRepo, clock.NewSystem())

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(transporthttp.RequestLogger(log))
	r.Use(transporthttp.CORS(cfg.CORSOrigins))
	r.NotFound(transporthttp.NotFoundHandler())

	r.Get("/health", transporthttp.HealthHandler)

	r.Post("/bookings", transporthttp.HandleBookTicket(bookingSvc))
	r.Delete("/tickets/{id}", transporthttp.HandleCancelTicket(cancelSvc))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", transporthttp.HandleCreateUser(adminSvc))
		r.Get("/{id}", transporthttp.HandleGetUser(adminSvc))
		r.Get("/{id}/tickets", transporthttp.HandleUserTickets(querySvc))
	})
	r.Route("/events", func(r chi.Router) {
		r.Post("/", transporthttp.HandleCreateEvent(adminSvc))
		r.Get("/", transporthttp.HandleListEvents(adminSvc))
		r.Get("/{id}", transporthttp.HandleGetEvent(adminSvc))
		r.Get("/{id}/tickets", transporthttp.HandleEventTickets(querySvc))
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	log.WithField("port", cfg.Port).Info("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
		}
	case <-stopCtx.Done():
		log.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("server shutdown error")
	}
	log.Info("server stopped")
}
