package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"atende/internal/auth/token"
	"atende/pkg/requestcontext"
)

// Test UUID for consistent testing
const testUserID = "550e8400-e29b-41d4-a716-446655440001"

// MockVerifier is a testify mock for TokenVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, tokenString string) token.Result {
	args := m.Called(ctx, tokenString)
	return args.Get(0).(token.Result)
}

// mockHandler is a test handler that captures if it was called and the context
type mockHandler struct {
	called  bool
	context context.Context
}

func (m *mockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.called = true
	m.context = r.Context()
	w.WriteHeader(http.StatusOK)
}

// AuthMiddlewareTestSuite is the test suite for the authorization gate
type AuthMiddlewareTestSuite struct {
	suite.Suite
	verifier    *MockVerifier
	nextHandler *mockHandler
	middleware  func(http.Handler) http.Handler
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.verifier = new(MockVerifier)
	s.nextHandler = &mockHandler{}
	s.middleware = RequireAuth(s.verifier, slog.Default())
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.verifier.AssertExpectations(s.T())
}

func (s *AuthMiddlewareTestSuite) makeRequest(authHeader string) *httptest.ResponseRecorder {
	handler := s.middleware(s.nextHandler)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestValidToken() {
	s.verifier.On("Verify", mock.Anything, "valid-token").Return(token.Result{
		Outcome: token.OutcomeValid,
		Claims: &token.Claims{
			UserID:   testUserID,
			TenantID: "1",
		},
	})

	w := s.makeRequest("Bearer valid-token")

	require.True(s.T(), s.nextHandler.called, "next handler should be called")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	// Verify the identity was bound to the request context
	assert.Equal(s.T(), testUserID, requestcontext.UserID(s.nextHandler.context).String())
	assert.Equal(s.T(), "1", requestcontext.TenantID(s.nextHandler.context).String())
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := s.makeRequest("")

	assert.False(s.T(), s.nextHandler.called)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestHeaderWithoutToken() {
	// A bare scheme prefix counts the same as no credential at all.
	w := s.makeRequest("Bearer ")

	assert.False(s.T(), s.nextHandler.called)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestWrongScheme() {
	w := s.makeRequest("Basic dXNlcjpwYXNz")

	assert.False(s.T(), s.nextHandler.called)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestMalformedToken() {
	s.verifier.On("Verify", mock.Anything, "garbage").Return(token.Result{Outcome: token.OutcomeMalformed})

	w := s.makeRequest("Bearer garbage")

	assert.False(s.T(), s.nextHandler.called)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	s.verifier.On("Verify", mock.Anything, "stale").Return(token.Result{Outcome: token.OutcomeExpired})

	w := s.makeRequest("Bearer stale")

	assert.False(s.T(), s.nextHandler.called)
	assert.Equal(s.T(), http.StatusForbidden, w.Code, "rejected credential is distinct from missing credential")
}

func (s *AuthMiddlewareTestSuite) TestValidTokenWithBadClaimIDs() {
	s.verifier.On("Verify", mock.Anything, "odd-claims").Return(token.Result{
		Outcome: token.OutcomeValid,
		Claims: &token.Claims{
			UserID:   "not-a-uuid",
			TenantID: "1",
		},
	})

	w := s.makeRequest("Bearer odd-claims")

	assert.False(s.T(), s.nextHandler.called)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
