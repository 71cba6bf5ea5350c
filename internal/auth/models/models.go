package models

import (
	id "atende/pkg/domain"
)

// This file contains pure domain models for authentication: entities that
// should not depend on transport or HTTP-specific concerns.

// User represents an end-user within a tenant. A user belongs to exactly one
// tenant for its whole life; email is unique per tenant, not globally.
// PasswordHash is opaque and never serialized to any caller.
type User struct {
	ID           id.UserID
	TenantID     id.TenantID
	Email        string
	Name         string
	PasswordHash string
}
