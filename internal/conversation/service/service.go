// Package service implements conversation ingestion and tenant-scoped reads.
package service

import (
	"context"
	"log/slog"

	"atende/internal/conversation/models"
	"atende/internal/platform/metrics"
	id "atende/pkg/domain"
	dErrors "atende/pkg/domain-errors"
	"atende/pkg/requestcontext"
)

// Store defines the persistence interface for conversations.
type Store interface {
	Insert(ctx context.Context, conv *models.Conversation) error
	ListByTenant(ctx context.Context, tenantID id.TenantID) ([]*models.Conversation, error)
}

// Service handles conversation operations.
type Service struct {
	convs   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService constructs the conversation service.
func NewService(convs Store, opts ...Option) *Service {
	svc := &Service{convs: convs}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// Ingest records a conversation pushed by the automation system. The tenant id
// is written exactly as asserted in the payload: this path carries no verified
// identity and that trust decision is deliberate (see the webhook handler).
func (s *Service) Ingest(ctx context.Context, req *models.WebhookRequest) (*models.Conversation, error) {
	tenantID, err := id.ParseTenantID(req.TenantID)
	if err != nil {
		return nil, err
	}

	conv := &models.Conversation{
		ID:          id.NewConversationID(),
		TenantID:    tenantID,
		ContactID:   req.ContactID,
		ContactName: req.ContactName,
		Summary:     req.Summary,
		Status:      models.StatusNew,
		CreatedAt:   requestcontext.Now(ctx),
	}

	if err := s.convs.Insert(ctx, conv); err != nil {
		s.logger.ErrorContext(ctx, "conversation insert failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not record conversation")
	}

	if s.metrics != nil {
		s.metrics.ConversationsIngested.Inc()
	}
	s.logger.InfoContext(ctx, "conversation ingested",
		"conversation_id", conv.ID.String(),
		"tenant_id", tenantID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)

	return conv, nil
}

// ListByTenant returns the conversations visible to the given tenant. The
// tenant id parameter must come from the verified identity in the request
// context; the handler has no way to pass a client-supplied tenant here, which
// is what keeps one tenant's users out of another tenant's rows.
func (s *Service) ListByTenant(ctx context.Context, tenantID id.TenantID) ([]*models.Conversation, error) {
	if tenantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInternal, "tenant scope missing")
	}

	convs, err := s.convs.ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.ErrorContext(ctx, "conversation list failed",
			"error", err,
			"tenant_id", tenantID.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list conversations")
	}
	return convs, nil
}
