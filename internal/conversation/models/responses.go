package models

import "time"

// IngestAck acknowledges a recorded webhook event.
type IngestAck struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ConversationSummary is the JSON shape for tenant-scoped listings. The tenant
// id is not echoed: rows are already scoped to the caller's tenant.
type ConversationSummary struct {
	ID          string    `json:"id"`
	ContactID   string    `json:"contatoId"`
	ContactName string    `json:"nomeContato"`
	Summary     string    `json:"resumoConversa"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewConversationSummary converts a domain conversation to its response shape.
func NewConversationSummary(c *Conversation) ConversationSummary {
	return ConversationSummary{
		ID:          c.ID.String(),
		ContactID:   c.ContactID,
		ContactName: c.ContactName,
		Summary:     c.Summary,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}
