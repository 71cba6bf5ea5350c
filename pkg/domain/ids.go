// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "atende/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing UserID where ConversationID is expected.
type (
	UserID         uuid.UUID
	ConversationID uuid.UUID
)

// TenantID is an opaque identifier for an isolation boundary. Tenants are
// provisioned outside this service, so no format beyond non-emptiness is assumed.
type TenantID string

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseConversationID(s string) (ConversationID, error) {
	id, err := parseUUID(s, "conversation ID")
	return ConversationID(id), err
}

func ParseTenantID(s string) (TenantID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "tenant ID cannot be empty")
	}
	return TenantID(s), nil
}

// String methods - for logging and debugging.

func (id UserID) String() string         { return uuid.UUID(id).String() }
func (id ConversationID) String() string { return uuid.UUID(id).String() }
func (id TenantID) String() string       { return string(id) }

// IsNil checks - used for service-layer validation.

func (id UserID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id ConversationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id TenantID) IsNil() bool       { return id == "" }

// NewUserID returns a fresh random user ID.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewConversationID returns a fresh random conversation ID.
func NewConversationID() ConversationID { return ConversationID(uuid.New()) }

// parseUUID is the shared validation logic for uuid-backed IDs.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, "invalid "+label+" format")
	}
	return id, nil
}
