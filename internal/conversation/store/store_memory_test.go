package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atende/internal/conversation/models"
	id "atende/pkg/domain"
)

func newTestConversation(tenant string, createdAt time.Time) *models.Conversation {
	return &models.Conversation{
		ID:          id.NewConversationID(),
		TenantID:    id.TenantID(tenant),
		ContactID:   "5511999999999",
		ContactName: "Ana",
		Summary:     "wants a quote",
		Status:      models.StatusNew,
		CreatedAt:   createdAt,
	}
}

func TestListByTenantIsolation(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	now := time.Now()

	mine := newTestConversation("1", now)
	other := newTestConversation("2", now)
	require.NoError(t, store.Insert(ctx, mine))
	require.NoError(t, store.Insert(ctx, other))

	convs, err := store.ListByTenant(ctx, "1")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, mine.ID, convs[0].ID)

	convs, err = store.ListByTenant(ctx, "2")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, other.ID, convs[0].ID)
}

func TestListByTenantEmpty(t *testing.T) {
	store := NewMemory()

	convs, err := store.ListByTenant(context.Background(), "none")
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestListByTenantOrder(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	base := time.Now()

	older := newTestConversation("1", base.Add(-time.Hour))
	newer := newTestConversation("1", base)
	require.NoError(t, store.Insert(ctx, older))
	require.NoError(t, store.Insert(ctx, newer))

	convs, err := store.ListByTenant(ctx, "1")
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, newer.ID, convs[0].ID, "newest first")
	assert.Equal(t, older.ID, convs[1].ID)
}
