package user

import (
	"context"
	"fmt"
	"sync"

	"atende/internal/auth/models"
	"atende/internal/platform/sentinel"
	id "atende/pkg/domain"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested entity does not exist
// - Return ErrAlreadyUsed when a (tenant, email) pair is already taken
// - Return wrapped errors with context for infrastructure failures

// InMemoryStore stores users in memory for tests and database-less development.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[id.UserID]*models.User
}

// NewMemory constructs an empty in-memory user store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{users: make(map[id.UserID]*models.User)}
}

func (s *InMemoryStore) Insert(_ context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Email uniqueness is scoped per tenant, mirroring the composite unique
	// constraint on the postgres store.
	for _, existing := range s.users {
		if existing.TenantID == user.TenantID && existing.Email == user.Email {
			return fmt.Errorf("user already exists: %w", sentinel.ErrAlreadyUsed)
		}
	}

	s.users[user.ID] = user
	return nil
}

func (s *InMemoryStore) FindByTenantEmail(_ context.Context, tenantID id.TenantID, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.TenantID == tenantID && user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}
