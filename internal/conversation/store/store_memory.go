package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"atende/internal/conversation/models"
	id "atende/pkg/domain"
)

// InMemoryStore stores conversations in memory for tests and database-less
// development.
type InMemoryStore struct {
	mu    sync.RWMutex
	convs map[id.ConversationID]*models.Conversation
}

// NewMemory constructs an empty in-memory conversation store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{convs: make(map[id.ConversationID]*models.Conversation)}
}

func (s *InMemoryStore) Insert(_ context.Context, conv *models.Conversation) error {
	if conv == nil {
		return fmt.Errorf("conversation is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[conv.ID] = conv
	return nil
}

func (s *InMemoryStore) ListByTenant(_ context.Context, tenantID id.TenantID) ([]*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var convs []*models.Conversation
	for _, conv := range s.convs {
		if conv.TenantID == tenantID {
			convs = append(convs, conv)
		}
	}
	// Newest first, matching the postgres ORDER BY.
	sort.Slice(convs, func(i, j int) bool {
		return convs[i].CreatedAt.After(convs[j].CreatedAt)
	})
	return convs, nil
}
