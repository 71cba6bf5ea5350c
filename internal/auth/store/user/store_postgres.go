package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"atende/internal/auth/models"
	"atende/internal/platform/sentinel"
	id "atende/pkg/domain"
	"atende/pkg/requestcontext"
)

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, tenant_id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.UUID(user.ID), string(user.TenantID), user.Email, user.Name, user.PasswordHash, requestcontext.Now(ctx))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user already exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByTenantEmail(ctx context.Context, tenantID id.TenantID, email string) (*models.User, error) {
	var (
		userID       uuid.UUID
		tenant       string
		rowEmail     string
		name         string
		passwordHash string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, tenant_id, email, name, password_hash
		FROM users
		WHERE tenant_id = $1 AND email = $2
	`, string(tenantID), email).Scan(&userID, &tenant, &rowEmail, &name, &passwordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find user by tenant and email: %w", err)
	}

	return &models.User{
		ID:           id.UserID(userID),
		TenantID:     id.TenantID(tenant),
		Email:        rowEmail,
		Name:         name,
		PasswordHash: passwordHash,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
