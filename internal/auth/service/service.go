// Package service implements registration and login on top of the credential
// store, the password hasher, and the token issuer.
package service

import (
	"context"
	"errors"
	"log/slog"

	"atende/internal/auth/models"
	"atende/internal/platform/metrics"
	"atende/internal/platform/sentinel"
	id "atende/pkg/domain"
	dErrors "atende/pkg/domain-errors"
	"atende/pkg/password"
	"atende/pkg/requestcontext"
)

// UserStore defines the persistence interface for user credentials.
// Error Contract: FindByTenantEmail returns sentinel.ErrNotFound (wrapped) when
// the user doesn't exist; Insert returns sentinel.ErrAlreadyUsed on a duplicate
// (tenant, email) pair.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByTenantEmail(ctx context.Context, tenantID id.TenantID, email string) (*models.User, error)
}

// TokenIssuer produces a signed bearer token for a verified identity.
type TokenIssuer interface {
	Issue(ctx context.Context, userID id.UserID, tenantID id.TenantID) (string, error)
}

// Service handles the authentication flows.
type Service struct {
	users   UserStore
	tokens  TokenIssuer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService constructs the auth service.
func NewService(users UserStore, tokens TokenIssuer, opts ...Option) *Service {
	svc := &Service{
		users:  users,
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// Register creates a user with a hashed password. The request is expected to
// be validated at the transport boundary; the tenant id is taken from the
// payload because registration happens before any identity exists.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResult, error) {
	tenantID, err := id.ParseTenantID(req.TenantID)
	if err != nil {
		return nil, err
	}

	digest, err := password.Hash(req.Password)
	if err != nil {
		// Hashing failure is operational; never a user-facing validation error.
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			s.logger.ErrorContext(ctx, "password hashing failed",
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not register user")
		}
		return nil, err
	}

	user := &models.User{
		ID:           id.NewUserID(),
		TenantID:     tenantID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: digest,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "email already registered for this tenant")
		}
		s.logger.ErrorContext(ctx, "user insert failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not register user")
	}

	if s.metrics != nil {
		s.metrics.UsersCreated.Inc()
	}
	s.logger.InfoContext(ctx, "user registered",
		"user_id", user.ID.String(),
		"tenant_id", tenantID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)

	return &models.RegisterResult{
		ID:    user.ID.String(),
		Email: user.Email,
	}, nil
}

// errInvalidCredentials is the single caller-visible login failure. Unknown
// email and wrong password are indistinguishable to prevent account
// enumeration; the log line carries the real reason.
func errInvalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
}

// Login verifies the credentials and issues a bearer token bound to the
// user's tenant.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	tenantID, err := id.ParseTenantID(req.TenantID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByTenantEmail(ctx, tenantID, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.recordAuthFailure(ctx, "unknown email", tenantID)
			return nil, errInvalidCredentials()
		}
		s.logger.ErrorContext(ctx, "user lookup failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not log in")
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		s.recordAuthFailure(ctx, "wrong password", tenantID)
		return nil, errInvalidCredentials()
	}

	tokenString, err := s.tokens.Issue(ctx, user.ID, user.TenantID)
	if err != nil {
		s.logger.ErrorContext(ctx, "token issuance failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not log in")
	}

	if s.metrics != nil {
		s.metrics.Logins.Inc()
	}
	s.logger.InfoContext(ctx, "user logged in",
		"user_id", user.ID.String(),
		"tenant_id", tenantID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)

	return &models.LoginResult{Token: tokenString}, nil
}

func (s *Service) recordAuthFailure(ctx context.Context, reason string, tenantID id.TenantID) {
	if s.metrics != nil {
		s.metrics.AuthFailures.Inc()
	}
	s.logger.WarnContext(ctx, "login rejected",
		"reason", reason,
		"tenant_id", tenantID.String(),
		"request_id", requestcontext.RequestID(ctx),
	)
}
