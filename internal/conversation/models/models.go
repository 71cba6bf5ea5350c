package models

import (
	"time"

	id "atende/pkg/domain"
)

// Status is the lifecycle state of a conversation. Ingested conversations
// always start as StatusNew; later transitions belong to other services.
type Status string

const StatusNew Status = "nova"

// Conversation is an inbound event recorded from the external automation
// system. TenantID is immutable after creation and is exactly the value the
// webhook payload asserted: no verified identity exists on that path.
type Conversation struct {
	ID          id.ConversationID
	TenantID    id.TenantID
	ContactID   string
	ContactName string
	Summary     string
	Status      Status
	CreatedAt   time.Time
}
