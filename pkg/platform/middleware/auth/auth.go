// Package auth provides the authorization gate every protected request passes
// through. It distinguishes an absent credential (401) from a rejected one
// (403) and binds the verified identity to the request context.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"atende/internal/auth/token"
	id "atende/pkg/domain"
	"atende/pkg/requestcontext"
)

// TokenVerifier verifies a bearer token and reports a tagged outcome.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenString string) token.Result
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAuth returns middleware that enforces a valid bearer token.
//
// State machine per request: no credential -> 401, credential present but
// malformed or expired -> 403, valid -> identity stored in context and the
// next handler invoked. Each request is evaluated independently; nothing is
// retried or remembered.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")

			// A header without a token after the scheme prefix counts as no
			// credential, same as an absent header.
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				logger.WarnContext(ctx, "unauthorized access - missing credential",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing Authorization header")
				return
			}

			res := verifier.Verify(ctx, tokenString)
			switch res.Outcome {
			case token.OutcomeMalformed:
				logger.WarnContext(ctx, "forbidden access - malformed token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Invalid token")
				return
			case token.OutcomeExpired:
				logger.WarnContext(ctx, "forbidden access - expired token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Expired token")
				return
			}

			userID, err := id.ParseUserID(res.Claims.UserID)
			if err != nil {
				logger.WarnContext(ctx, "forbidden access - malformed token claims",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Invalid token")
				return
			}
			tenantID, err := id.ParseTenantID(res.Claims.TenantID)
			if err != nil {
				logger.WarnContext(ctx, "forbidden access - malformed token claims",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "Invalid token")
				return
			}

			// The identity set here is the only legal source of tenant scope
			// for everything downstream of this gate.
			ctx = requestcontext.WithIdentity(ctx, userID, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
