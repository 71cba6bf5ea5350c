// Package handler exposes the public authentication endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atende/internal/auth/models"
	"atende/pkg/platform/httputil"
)

// Service defines the interface for authentication operations.
type Service interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
}

// Handler handles registration and login. Both routes are public: they are
// how a caller obtains a credential in the first place.
type Handler struct {
	auth   Service
	logger *slog.Logger
}

// New creates a new auth Handler with the given service and logger.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
}

// HandleRegister implements POST /auth/register.
//
// Input: { "tenantId": "1", "email": "a@x.com", "nome": "Ana", "senha": "secret" }
// Output: 201 { "id": "...", "email": "a@x.com" }
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.RegisterRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.auth.Register(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, res)
}

// HandleLogin implements POST /auth/login.
//
// Input: { "tenantId": "1", "email": "a@x.com", "senha": "secret" }
// Output: 200 { "token": "..." }
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.auth.Login(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}
