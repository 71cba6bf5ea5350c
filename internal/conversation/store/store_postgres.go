package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"atende/internal/conversation/models"
	id "atende/pkg/domain"
)

// PostgresStore persists conversations in PostgreSQL. Every query carries an
// explicit tenant predicate; there is no unscoped read path.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed conversation store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, conv *models.Conversation) error {
	if conv == nil {
		return fmt.Errorf("conversation is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversations (id, tenant_id, contact_id, contact_name, summary, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(conv.ID), string(conv.TenantID), conv.ContactID, conv.ContactName, conv.Summary, string(conv.Status), conv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert conversation: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByTenant(ctx context.Context, tenantID id.TenantID) ([]*models.Conversation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tenant_id, contact_id, contact_name, summary, status, created_at
		FROM conversations
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, string(tenantID))
	if err != nil {
		return nil, fmt.Errorf("list conversations by tenant: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor cleanup

	var convs []*models.Conversation
	for rows.Next() {
		var (
			convID uuid.UUID
			tenant string
			conv   models.Conversation
			status string
		)
		if err := rows.Scan(&convID, &tenant, &conv.ContactID, &conv.ContactName, &conv.Summary, &status, &conv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		conv.ID = id.ConversationID(convID)
		conv.TenantID = id.TenantID(tenant)
		conv.Status = models.Status(status)
		convs = append(convs, &conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}
	return convs, nil
}
