// Package token issues and verifies the signed bearer tokens that carry a
// user's verified identity between login and every protected request.
package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "atende/pkg/domain"
	dErrors "atende/pkg/domain-errors"
	"atende/pkg/requestcontext"
)

// DefaultTTL is the fixed token lifetime. There is no refresh or rotation: a
// token is valid for its full lifetime or not at all.
const DefaultTTL = 8 * time.Hour

// Claims is the self-contained claim set embedded in every issued token.
type Claims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// Outcome tags the result of verifying a token.
type Outcome int

const (
	// OutcomeValid means signature and expiry both check out.
	OutcomeValid Outcome = iota
	// OutcomeMalformed means the token could not be parsed or its signature
	// does not match.
	OutcomeMalformed
	// OutcomeExpired means the signature is good but the token is past its
	// expiry.
	OutcomeExpired
)

// Result is the tagged outcome of Verify. Claims is non-nil only for
// OutcomeValid.
type Result struct {
	Outcome Outcome
	Claims  *Claims
}

// Service signs and verifies HS256 tokens with a process-wide secret.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

// New constructs a token service. A non-positive ttl falls back to DefaultTTL.
func New(signingKey string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Issue produces a signed token encoding the user and tenant identity with an
// absolute expiry of issuance time plus the configured TTL. The clock comes
// from the context so tests can pin issuance time.
func (s *Service) Issue(ctx context.Context, userID id.UserID, tenantID id.TenantID) (string, error) {
	now := requestcontext.Now(ctx)

	claims := Claims{
		UserID:   userID.String(),
		TenantID: tenantID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signed, nil
}

// Verify checks signature integrity first, then expiry, and reports a tagged
// outcome instead of an error so the gate can map the two rejection causes to
// distinct statuses. Expiry is evaluated against the context clock.
func (s *Service) Verify(ctx context.Context, tokenString string) Result {
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(func() time.Time {
		return requestcontext.Now(ctx)
	}))

	if err != nil {
		// Signature failures win over claim failures: a tampered token is
		// malformed even when its payload also happens to be expired.
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) && errors.Is(err, jwt.ErrTokenExpired) {
			return Result{Outcome: OutcomeExpired}
		}
		return Result{Outcome: OutcomeMalformed}
	}

	if !parsed.Valid {
		return Result{Outcome: OutcomeMalformed}
	}

	return Result{Outcome: OutcomeValid, Claims: claims}
}
