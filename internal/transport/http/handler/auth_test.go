package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/learnhub-api/internal/application/auth"
	"github.com/learnhub-api/internal/domain"
	tokeninfra "github.com/learnhub-api/internal/infrastructure/token"
	"github.com/learnhub-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) Login(ctx context.Context, email, password string) (*auth.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if res, _ := args.Get(0).(*auth.LoginResult); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAuthSvc) VerifySession(tokenStr string) (*tokeninfra.Claims, error) {
	args := m.Called(tokenStr)
	if c, _ := args.Get(0).(*tokeninfra.Claims); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAuthSvc) RequestPasswordReset(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockAuthSvc) CompletePasswordReset(ctx context.Context, resetToken, newPassword string) error {
	return m.Called(ctx, resetToken, newPassword).Error(0)
}

type mockAccountSvc struct{ mock.Mock }

func (m *mockAccountSvc) Register(ctx context.Context, req domain.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountSvc) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountSvc) Update(ctx context.Context, accountID string, req domain.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountSvc) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	return m.Called(ctx, accountID, currentPassword, newPassword).Error(0)
}

// --- helpers ---

// withClaims injects authenticated-session claims into the request context.
func withClaims(r *http.Request, accountID string) *http.Request {
	claims := &tokeninfra.Claims{AccountID: accountID, Email: "asha@example.com"}
	return r.WithContext(context.WithValue(r.Context(), middleware.ClaimsKey, claims))
}

func jsonReq(t *testing.T, method, target string, v interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return httptest.NewRequest(method, target, bytes.NewReader(body))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) MessageEnvelope {
	t.Helper()
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

// --- Signup tests ---

func TestSignup_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockAccountSvc{})
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.Signup(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignup_ValidationFailure_NamesField(t *testing.T) {
	acc := &mockAccountSvc{}
	acc.On("Register", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("field 'Password' failed 'min': %w", domain.ErrValidation))
	h := NewAuthHandler(&mockAuthSvc{}, acc)

	r := jsonReq(t, http.MethodPost, "/v1/auth/signup", domain.CreateAccountRequest{Email: "a@b.com"})
	rr := httptest.NewRecorder()
	h.Signup(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeMessage(t, rr).Message, "Password")
}

func TestSignup_Conflict(t *testing.T) {
	acc := &mockAccountSvc{}
	acc.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)
	h := NewAuthHandler(&mockAuthSvc{}, acc)

	r := jsonReq(t, http.MethodPost, "/v1/auth/signup", domain.CreateAccountRequest{Email: "a@b.com"})
	rr := httptest.NewRecorder()
	h.Signup(rr, r)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestSignup_HappyPath(t *testing.T) {
	acc := &mockAccountSvc{}
	acc.On("Register", mock.Anything, mock.Anything).Return(&domain.Account{AccountID: "a1"}, nil)
	h := NewAuthHandler(&mockAuthSvc{}, acc)

	r := jsonReq(t, http.MethodPost, "/v1/auth/signup", domain.CreateAccountRequest{Email: "a@b.com"})
	rr := httptest.NewRecorder()
	h.Signup(rr, r)

	assert.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeMessage(t, rr)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "a1", resp.UserID)
	acc.AssertExpectations(t)
}

// --- Login tests ---

func TestLogin_MissingFields(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockAccountSvc{})
	r := jsonReq(t, http.MethodPost, "/v1/auth/login", map[string]string{"email": "a@b.com"})
	rr := httptest.NewRecorder()
	h.Login(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_InvalidCredentials_FixedMessage(t *testing.T) {
	authSvc := &mockAuthSvc{}
	authSvc.On("Login", mock.Anything, "a@b.com", "wrong").Return(nil, domain.ErrInvalidCredentials)
	h := NewAuthHandler(authSvc, &mockAccountSvc{})

	r := jsonReq(t, http.MethodPost, "/v1/auth/login", map[string]string{"email": "a@b.com", "password": "wrong"})
	rr := httptest.NewRecorder()
	h.Login(rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid credentials", decodeMessage(t, rr).Message)
}

func TestLogin_HappyPath_SetsCookieAndReturnsToken(t *testing.T) {
	authSvc := &mockAuthSvc{}
	authSvc.On("Login", mock.Anything, "a@b.com", "secret123").Return(&auth.LoginResult{
		Token:   "session-token",
		Account: &domain.Account{AccountID: "a1", Email: "a@b.com"},
	}, nil)
	h := NewAuthHandler(authSvc, &mockAccountSvc{})

	r := jsonReq(t, http.MethodPost, "/v1/auth/login", map[string]string{"email": "a@b.com", "password": "secret123"})
	rr := httptest.NewRecorder()
	h.Login(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp LoginEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "session-token", resp.Token)
	assert.Equal(t, "a1", resp.User.AccountID)
	// The stored hash must never appear in the response.
	assert.NotContains(t, rr.Body.String(), "password")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "session-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}

// --- Me tests ---

func TestMe_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockAccountSvc{})
	rr := httptest.NewRecorder()
	h.Me(rr, httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe_ReturnsProfile(t *testing.T) {
	acc := &mockAccountSvc{}
	acc.On("Get", mock.Anything, "a1").Return(&domain.Account{AccountID: "a1", FirstName: "Asha"}, nil)
	h := NewAuthHandler(&mockAuthSvc{}, acc)

	r := withClaims(httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil), "a1")
	rr := httptest.NewRecorder()
	h.Me(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp domain.Account
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Asha", resp.FirstName)
}

// --- RequestReset tests ---

func TestRequestReset_EmptyEmail(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockAccountSvc{})
	r := jsonReq(t, http.MethodPost, "/v1/auth/request-reset", map[string]string{"email": ""})
	rr := httptest.NewRecorder()
	h.RequestReset(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequestReset_AlwaysSaysSent(t *testing.T) {
	authSvc := &mockAuthSvc{}
	authSvc.On("RequestPasswordReset", mock.Anything, "ghost@example.com").Return(nil)
	h := NewAuthHandler(authSvc, &mockAccountSvc{})

	r := jsonReq(t, http.MethodPost, "/v1/auth/request-reset", map[string]string{"email": "ghost@example.com"})
	rr := httptest.NewRecorder()
	h.RequestReset(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "If that email is registered, a reset link has been sent", decodeMessage(t, rr).Message)
}

func TestRequestReset_MailDispatchFailure(t *testing.T) {
	authSvc := &mockAuthSvc{}
	authSvc.On("RequestPasswordReset", mock.Anything, "a@b.com").Return(domain.ErrNotification)
	h := NewAuthHandler(authSvc, &mockAccountSvc{})

	r := jsonReq(t, http.MethodPost, "/v1/auth/request-reset", map[string]string{"email": "a@b.com"})
	rr := httptest.NewRecorder()
	h.RequestReset(rr, r)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

// --- ResetPassword tests ---

func TestResetPassword_MissingToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthSvc{}, &mockAccountSvc{})
	r := jsonReq(t, http.MethodPost, "/v1/auth/reset-password", map[string]string{"newPassword": "secret123"})
	rr := httptest.NewRecorder()
	h.ResetPassword(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	authSvc := &mockAuthSvc{}
	authSvc.On("CompletePasswordReset", mock.Anything, "stale", "secret123").Return(domain.ErrInvalidResetToken)
	h := NewAuthHandler(authSvc, &mockAccountSvc{})

	r := jsonReq(t, http.MethodPost, "/v1/auth/reset-password", map[string]string{"token": "stale", "newPassword": "secret123"})
	rr := httptest.NewRecorder()
	h.ResetPassword(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid or expired reset token", decodeMessage(t, rr).Message)
}

func TestResetPassword_HappyPath(t *testing.T) {
	authSvc := &mockAuthSvc{}
	authSvc.On("CompletePasswordReset", mock.Anything, "tok", "secret123").Return(nil)
	h := NewAuthHandler(authSvc, &mockAccountSvc{})

	r := jsonReq(t, http.MethodPost, "/v1/auth/reset-password", map[string]string{"token": "tok", "newPassword": "secret123"})
	rr := httptest.NewRecorder()
	h.ResetPassword(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Password has been reset successfully", decodeMessage(t, rr).Message)
	authSvc.AssertExpectations(t)
}
