package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"atende/internal/auth/models"
	userStore "atende/internal/auth/store/user"
	"atende/internal/auth/token"
	dErrors "atende/pkg/domain-errors"
	"atende/pkg/requestcontext"
)

type AuthServiceTestSuite struct {
	suite.Suite
	users  *userStore.InMemoryStore
	tokens *token.Service
	svc    *Service
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.users = userStore.NewMemory()
	s.tokens = token.New("test-signing-key", 0)
	s.svc = NewService(s.users, s.tokens)
}

func (s *AuthServiceTestSuite) register(tenant, email, pass string) *models.RegisterResult {
	res, err := s.svc.Register(context.Background(), &models.RegisterRequest{
		TenantID: tenant,
		Email:    email,
		Password: pass,
	})
	require.NoError(s.T(), err)
	return res
}

func (s *AuthServiceTestSuite) TestRegister() {
	res := s.register("1", "a@x.com", "secret")

	assert.NotEmpty(s.T(), res.ID)
	assert.Equal(s.T(), "a@x.com", res.Email)

	// The stored digest must not be the plaintext.
	stored, err := s.users.FindByTenantEmail(context.Background(), "1", "a@x.com")
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), "secret", stored.PasswordHash)
	assert.NotEmpty(s.T(), stored.PasswordHash)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicate() {
	s.register("1", "a@x.com", "secret")

	_, err := s.svc.Register(context.Background(), &models.RegisterRequest{
		TenantID: "1",
		Email:    "a@x.com",
		Password: "other",
	})
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *AuthServiceTestSuite) TestRegisterSameEmailOtherTenant() {
	s.register("1", "a@x.com", "secret")
	res := s.register("2", "a@x.com", "secret")
	assert.NotEmpty(s.T(), res.ID)
}

func (s *AuthServiceTestSuite) TestLogin() {
	s.register("1", "a@x.com", "secret")

	res, err := s.svc.Login(context.Background(), &models.LoginRequest{
		TenantID: "1",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), res.Token)

	// The issued token carries the user's tenant.
	verified := s.tokens.Verify(context.Background(), res.Token)
	require.Equal(s.T(), token.OutcomeValid, verified.Outcome)
	assert.Equal(s.T(), "1", verified.Claims.TenantID)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	s.register("1", "a@x.com", "secret")

	_, err := s.svc.Login(context.Background(), &models.LoginRequest{
		TenantID: "1",
		Email:    "a@x.com",
		Password: "wrong",
	})
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *AuthServiceTestSuite) TestLoginUnknownEmailIndistinguishable() {
	s.register("1", "a@x.com", "secret")

	_, wrongPass := s.svc.Login(context.Background(), &models.LoginRequest{
		TenantID: "1", Email: "a@x.com", Password: "wrong",
	})
	_, unknown := s.svc.Login(context.Background(), &models.LoginRequest{
		TenantID: "1", Email: "nobody@x.com", Password: "secret",
	})

	require.Error(s.T(), wrongPass)
	require.Error(s.T(), unknown)
	// Same message for both, so callers cannot enumerate accounts.
	assert.Equal(s.T(), wrongPass.Error(), unknown.Error())
}

func (s *AuthServiceTestSuite) TestLoginWrongTenant() {
	s.register("1", "a@x.com", "secret")

	// The right credentials under the wrong tenant are still invalid.
	_, err := s.svc.Login(context.Background(), &models.LoginRequest{
		TenantID: "2",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *AuthServiceTestSuite) TestIssuedTokenExpiry() {
	s.register("1", "a@x.com", "secret")

	issuedAt := time.Now()
	ctx := requestcontext.WithTime(context.Background(), issuedAt)
	res, err := s.svc.Login(ctx, &models.LoginRequest{
		TenantID: "1", Email: "a@x.com", Password: "secret",
	})
	require.NoError(s.T(), err)

	later := requestcontext.WithTime(context.Background(), issuedAt.Add(token.DefaultTTL+time.Minute))
	verified := s.tokens.Verify(later, res.Token)
	assert.Equal(s.T(), token.OutcomeExpired, verified.Outcome)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
