// Package handler exposes the conversation endpoints: the unauthenticated
// webhook the automation system pushes into, and the tenant-scoped listing
// behind the authorization gate.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atende/internal/conversation/models"
	"atende/internal/platform/metrics"
	id "atende/pkg/domain"
	"atende/pkg/platform/httputil"
	"atende/pkg/requestcontext"
)

// Service defines the interface for conversation operations.
type Service interface {
	Ingest(ctx context.Context, req *models.WebhookRequest) (*models.Conversation, error)
	ListByTenant(ctx context.Context, tenantID id.TenantID) ([]*models.Conversation, error)
}

// Handler handles conversation ingestion and listing.
type Handler struct {
	convs   Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a new conversation Handler. Metrics may be nil in tests.
func New(convs Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		convs:   convs,
		logger:  logger,
		metrics: m,
	}
}

// RegisterWebhook mounts the ingest route on an UNAUTHENTICATED router.
//
// Trust boundary: the caller is the automation system, which has no user
// credential, so the payload's tenant id is taken on trust instead of being
// cross-checked against a verified identity. This is a deliberate, weaker
// boundary than the bearer-token gate, not an oversight; do not move this
// route behind RequireAuth.
func (h *Handler) RegisterWebhook(r chi.Router) {
	r.Post("/webhook/conversations", h.HandleWebhook)
}

// RegisterProtected mounts the tenant-scoped routes; the parent router applies
// the authorization gate.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/conversations", h.HandleList)
}

// HandleWebhook implements POST /webhook/conversations.
//
// Input: { "tenantId": "1", "contatoId": "5511...", "nomeContato": "Ana", "resumoConversa": "..." }
// Output: 200 { "message": "conversation recorded", "id": "..." }
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeJSON[models.WebhookRequest](w, r, h.logger)
	if !ok {
		return
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		if h.metrics != nil {
			h.metrics.WebhookRejected.Inc()
		}
		h.logger.WarnContext(r.Context(), "webhook payload rejected",
			"error", err,
			"request_id", requestcontext.RequestID(r.Context()),
		)
		httputil.WriteError(w, err)
		return
	}

	conv, err := h.convs.Ingest(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.IngestAck{
		Message: "conversation recorded",
		ID:      conv.ID.String(),
	})
}

// HandleList implements GET /conversations. The tenant scope comes only from
// the verified identity the gate stored in the context; tenant-like fields in
// the query string or body are ignored by construction.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, tenantID, err := httputil.RequireIdentity(r.Context(), h.logger)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	convs, err := h.convs.ListByTenant(r.Context(), tenantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	summaries := make([]models.ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		summaries = append(summaries, models.NewConversationSummary(conv))
	}
	httputil.WriteJSON(w, http.StatusOK, summaries)
}
