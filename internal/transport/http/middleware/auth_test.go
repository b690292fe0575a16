package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tokeninfra "github.com/learnhub-api/internal/infrastructure/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts exactly one token string and rejects everything else.
type stubVerifier struct {
	valid  string
	claims *tokeninfra.Claims
}

func (s *stubVerifier) VerifySession(tokenStr string) (*tokeninfra.Claims, error) {
	if tokenStr == s.valid {
		return s.claims, nil
	}
	return nil, errors.New("invalid token")
}

func newVerifier() *stubVerifier {
	return &stubVerifier{
		valid:  "good-token",
		claims: &tokeninfra.Claims{AccountID: "a1", Email: "asha@example.com"},
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestAuth_MissingCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Auth(newVerifier())(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_BadToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()
	Auth(newVerifier())(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_NonBearerScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	rr := httptest.NewRecorder()
	Auth(newVerifier())(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_BearerHeader_InjectsClaims(t *testing.T) {
	var gotClaims *tokeninfra.Claims
	captureHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	Auth(newVerifier())(captureHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "a1", gotClaims.AccountID)
	assert.Equal(t, "asha@example.com", gotClaims.Email)
}

func TestAuth_CookieFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "good-token"})
	rr := httptest.NewRecorder()
	Auth(newVerifier())(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	req.AddCookie(&http.Cookie{Name: "token", Value: "good-token"})
	rr := httptest.NewRecorder()
	Auth(newVerifier())(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
