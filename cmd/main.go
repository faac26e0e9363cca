// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/eventease-app/eventease/internal/auth"
	"github.com/eventease-app/eventease/internal/config"
	"github.com/eventease-app/eventease/internal/handler"
	"github.com/eventease-app/eventease/internal/repository"
	"github.com/eventease-app/eventease/internal/seed"
	"github.com/eventease-app/eventease/internal/service"
	"github.com/eventease-app/eventease/internal/session"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	// ── 1. Build stores and services ─────────────────────────────────────
	events := repository.NewEventRepository()
	registrations := repository.NewRegistrationRepository(events)
	users := repository.NewUserRepository()

	verifier := auth.NewBcryptVerifier(cfg.BcryptCost)
	notifier := session.NewNotifier()
	sessions := session.NewManager(notifier)

	eventSvc := service.NewEventService(events)
	regSvc := service.NewRegistrationService(events, registrations)
	directory := service.NewDirectory(users, verifier, notifier)

	notifier.Subscribe(func(c session.Change) {
		slog.Debug("state change", "kind", c.Kind, "user_id", c.UserID, "event_id", c.EventID)
	})

	// ── 2. Seed the catalog and directory ────────────────────────────────
	fixtures, err := seed.Load(cfg.SeedFile)
	if err != nil {
		slog.Warn("seed file unavailable, starting empty", "path", cfg.SeedFile, "error", err)
	} else if err := seed.Apply(ctx, fixtures, events, users, verifier); err != nil {
		slog.Error("seed", "error", err)
		os.Exit(1)
	} else {
		slog.Info("seeded", "events", len(fixtures.Events), "users", len(fixtures.Users))
	}

	// ── 3. Build the router ──────────────────────────────────────────────
	eventHandler := handler.NewEventHandler(eventSvc, regSvc)
	regHandler := handler.NewRegistrationHandler(regSvc)
	accountHandler := handler.NewAccountHandler(directory, regSvc, sessions)
	sessionHandler := handler.NewSessionHandler(sessions)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(handler.Logger)
	r.Use(handler.CORS)
	r.Use(handler.WithActor(sessions))

	r.Get("/health", handler.HealthCheck)

	r.Route("/events", func(r chi.Router) {
		r.Post("/", eventHandler.CreateEvent)
		r.Get("/", eventHandler.ListEvents)
		r.Get("/{id}", eventHandler.GetEvent)
		r.Put("/{id}", eventHandler.UpdateEvent)
		r.Delete("/{id}", eventHandler.DeleteEvent)
		r.Post("/{id}/register", eventHandler.Register)
		r.Get("/{id}/registrations", eventHandler.ListRegistrations)
		r.Get("/{id}/stats", eventHandler.AttendanceStats)
		r.Get("/{id}/tickets", eventHandler.TicketCount)
	})

	r.Route("/registrations", func(r chi.Router) {
		r.Get("/{id}", regHandler.Get)
		r.Get("/code/{code}", regHandler.GetByCode)
		r.Put("/{id}/status", regHandler.UpdateStatus)
		r.Post("/{id}/cancel", regHandler.Cancel)
		r.Post("/checkin", regHandler.CheckIn)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", accountHandler.Signup)
		r.Post("/login", accountHandler.Login)
		r.Post("/logout", accountHandler.Logout)
	})

	r.Route("/me", func(r chi.Router) {
		r.Get("/", accountHandler.Me)
		r.Put("/", accountHandler.UpdateMe)
		r.Get("/favorites", accountHandler.ListFavorites)
		r.Put("/favorites/{id}", accountHandler.AddFavorite)
		r.Delete("/favorites/{id}", accountHandler.RemoveFavorite)
		r.Get("/registrations", accountHandler.ListRegisteredIDs)
		r.Put("/registrations/{id}", accountHandler.MarkRegistered)
		r.Get("/registrations/records", accountHandler.ListMyRegistrations)
	})

	r.Route("/session", func(r chi.Router) {
		r.Put("/", sessionHandler.Set)
		r.Get("/", sessionHandler.Get)
		r.Delete("/", sessionHandler.Clear)
		r.Get("/registrations", sessionHandler.MyRegistrations)
		r.Post("/checkin", sessionHandler.CheckIn)
		r.Post("/events/{id}/register", sessionHandler.Register)
		r.Get("/events/{id}/registrations", sessionHandler.Registrations)
		r.Get("/events/{id}/stats", sessionHandler.Stats)
	})

	// ── 4. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
