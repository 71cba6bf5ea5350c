package models

import (
	"strings"

	dErrors "atende/pkg/domain-errors"
)

// RegisterRequest is the payload for POST /auth/register. Registration is the
// one public path that accepts a client-supplied tenant id: there is no
// verified identity yet to derive it from.
type RegisterRequest struct {
	TenantID string `json:"tenantId"`
	Email    string `json:"email"`
	Name     string `json:"nome,omitempty"`
	Password string `json:"senha"`
}

func (r *RegisterRequest) Sanitize() {
	r.TenantID = strings.TrimSpace(r.TenantID)
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(r.Email)
}

func (r *RegisterRequest) Validate() error {
	var missing []string
	if r.TenantID == "" {
		missing = append(missing, "tenantId")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Password == "" {
		missing = append(missing, "senha")
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation, "missing required fields: "+strings.Join(missing, ", "))
	}
	if !strings.Contains(r.Email, "@") {
		return dErrors.New(dErrors.CodeValidation, "invalid email format")
	}
	return nil
}

// LoginRequest is the payload for POST /auth/login. The tenant id here only
// scopes the credential lookup; the authoritative tenant binding for later
// requests comes from the issued token, not from this field.
type LoginRequest struct {
	TenantID string `json:"tenantId"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

func (r *LoginRequest) Sanitize() {
	r.TenantID = strings.TrimSpace(r.TenantID)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(r.Email)
}

func (r *LoginRequest) Validate() error {
	var missing []string
	if r.TenantID == "" {
		missing = append(missing, "tenantId")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Password == "" {
		missing = append(missing, "senha")
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation, "missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}
