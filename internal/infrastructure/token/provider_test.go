package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_EmptySecret(t *testing.T) {
	_, err := NewProvider("", time.Hour)
	require.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)

	tok, err := p.Sign("a1", "asha@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := p.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.AccountID)
	assert.Equal(t, "asha@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), claims.ExpiresAt.Unix(), 5)
}

func TestVerify_ExpiredToken(t *testing.T) {
	p, err := NewProvider("test-secret", -time.Minute)
	require.NoError(t, err)

	tok, err := p.Sign("a1", "asha@example.com")
	require.NoError(t, err)

	_, err = p.Verify(tok)
	require.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	p1, _ := NewProvider("secret-one", time.Hour)
	p2, _ := NewProvider("secret-two", time.Hour)

	tok, err := p1.Sign("a1", "asha@example.com")
	require.NoError(t, err)

	_, err = p2.Verify(tok)
	require.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	p, _ := NewProvider("test-secret", time.Hour)
	_, err := p.Verify("not.a.token")
	require.Error(t, err)
}

func TestVerify_RejectsNonHMACAlgorithm(t *testing.T) {
	// alg=none tokens must never verify even with a valid payload shape.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		AccountID: "a1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	p, _ := NewProvider("test-secret", time.Hour)
	_, err = p.Verify(tok)
	require.Error(t, err)
}
