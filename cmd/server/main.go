package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	authHandler "atende/internal/auth/handler"
	authService "atende/internal/auth/service"
	userStore "atende/internal/auth/store/user"
	"atende/internal/auth/token"
	convHandler "atende/internal/conversation/handler"
	convService "atende/internal/conversation/service"
	convStore "atende/internal/conversation/store"
	"atende/internal/platform/config"
	"atende/internal/platform/database"
	"atende/internal/platform/health"
	"atende/internal/platform/logger"
	"atende/internal/platform/metrics"
	httptransport "atende/internal/transport/http"
	"atende/migrations"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	log := logger.New()

	// Fail fast: a process without a signing secret must not start.
	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("initializing atende",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"token_ttl", cfg.TokenTTL.String(),
	)

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck // process is exiting

	var (
		users authService.UserStore
		convs convService.Store
	)
	if pool != nil {
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrations.Apply(migrateCtx, pool.DB()); err != nil {
			cancel()
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		cancel()
		users = userStore.NewPostgres(pool.DB())
		convs = convStore.NewPostgres(pool.DB())
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		users = userStore.NewMemory()
		convs = convStore.NewMemory()
	}

	m := metrics.New()
	tokens := token.New(cfg.JWTSigningKey, cfg.TokenTTL)

	auth := authService.NewService(users, tokens,
		authService.WithLogger(log),
		authService.WithMetrics(m),
	)
	conversations := convService.NewService(convs,
		convService.WithLogger(log),
		convService.WithMetrics(m),
	)

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Auth:          authHandler.New(auth, log),
		Conversations: convHandler.New(conversations, log, m),
		Health:        healthHandler,
		Verifier:      tokens,
		Metrics:       m,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
