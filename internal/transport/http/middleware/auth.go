package middleware

import (
	"context"
	"net/http"
	"strings"

	tokeninfra "github.com/learnhub-api/internal/infrastructure/token"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// SessionVerifier validates a session token and returns its claims.
type SessionVerifier interface {
	VerifySession(tokenStr string) (*tokeninfra.Claims, error)
}

// Auth returns middleware that validates the session token and injects claims
// into the request context. The token is read from the Authorization header
// (Bearer scheme) or, failing that, from the HTTP-only "token" cookie set at
// login.
func Auth(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization")
				return
			}
			claims, err := verifier.VerifySession(tokenStr)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}
	return ""
}

// ClaimsFromContext extracts session claims from the request context.
func ClaimsFromContext(ctx context.Context) (*tokeninfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*tokeninfra.Claims)
	return c, ok
}
