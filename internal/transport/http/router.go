// Package httptransport wires handlers and middleware into the HTTP router.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "atende/internal/auth/handler"
	convHandler "atende/internal/conversation/handler"
	"atende/internal/platform/health"
	"atende/internal/platform/metrics"
	"atende/internal/platform/middleware"
	authmw "atende/pkg/platform/middleware/auth"
)

// Deps collects everything the router mounts.
type Deps struct {
	Auth          *authHandler.Handler
	Conversations *convHandler.Handler
	Health        *health.Handler
	Verifier      authmw.TokenVerifier
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
}

// NewRouter wires all endpoints with the shared middleware stack. Public
// routes (register, login, webhook ingest, health, metrics) sit outside the
// authorization gate; everything tenant-scoped sits behind it.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	if d.Health != nil {
		d.Health.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	d.Auth.Register(r)
	d.Conversations.RegisterWebhook(r)

	r.Group(func(pr chi.Router) {
		pr.Use(authmw.RequireAuth(d.Verifier, d.Logger))
		d.Conversations.RegisterProtected(pr)
	})

	return r
}
