package models

import (
	"strings"

	dErrors "atende/pkg/domain-errors"
)

// WebhookRequest is the tenant-asserting payload pushed by the automation
// system. The wire field names match the automation flows that produce them.
type WebhookRequest struct {
	TenantID    string `json:"tenantId"`
	ContactID   string `json:"contatoId"`
	ContactName string `json:"nomeContato"`
	Summary     string `json:"resumoConversa"`
}

func (r *WebhookRequest) Sanitize() {
	r.TenantID = strings.TrimSpace(r.TenantID)
	r.ContactID = strings.TrimSpace(r.ContactID)
	r.ContactName = strings.TrimSpace(r.ContactName)
	r.Summary = strings.TrimSpace(r.Summary)
}

// Validate rejects the payload before any store write when any of the four
// required fields is missing.
func (r *WebhookRequest) Validate() error {
	var missing []string
	if r.TenantID == "" {
		missing = append(missing, "tenantId")
	}
	if r.ContactID == "" {
		missing = append(missing, "contatoId")
	}
	if r.ContactName == "" {
		missing = append(missing, "nomeContato")
	}
	if r.Summary == "" {
		missing = append(missing, "resumoConversa")
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation, "insufficient data: missing "+strings.Join(missing, ", "))
	}
	return nil
}
