package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atende/internal/auth/models"
	"atende/internal/platform/sentinel"
	id "atende/pkg/domain"
)

func newTestUser(tenant, email string) *models.User {
	return &models.User{
		ID:           id.NewUserID(),
		TenantID:     id.TenantID(tenant),
		Email:        email,
		PasswordHash: "$2a$10$fakedigest",
	}
}

func TestInsertAndFind(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	user := newTestUser("1", "a@x.com")
	require.NoError(t, store.Insert(ctx, user))

	found, err := store.FindByTenantEmail(ctx, "1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
}

func TestFindNotFound(t *testing.T) {
	store := NewMemory()

	_, err := store.FindByTenantEmail(context.Background(), "1", "missing@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestDuplicateEmailSameTenant(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, newTestUser("1", "a@x.com")))

	err := store.Insert(ctx, newTestUser("1", "a@x.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
}

func TestSameEmailDifferentTenants(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	// Email uniqueness is scoped per tenant.
	require.NoError(t, store.Insert(ctx, newTestUser("1", "a@x.com")))
	require.NoError(t, store.Insert(ctx, newTestUser("2", "a@x.com")))

	first, err := store.FindByTenantEmail(ctx, "1", "a@x.com")
	require.NoError(t, err)
	second, err := store.FindByTenantEmail(ctx, "2", "a@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, id.TenantID("1"), first.TenantID)
	assert.Equal(t, id.TenantID("2"), second.TenantID)
}
