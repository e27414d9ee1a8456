package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenService_Missing(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Validate("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Validate("definitely.not.ajwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret")
	// Issue a token whose entire validity window is already in the past.
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue(7)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_ValidUntilExpiry(t *testing.T) {
	svc := NewTokenService("test-secret")
	// Issued just under an hour ago: still inside the window.
	svc.now = func() time.Time { return time.Now().Add(-TokenTTL + time.Minute) }

	token, err := svc.Issue(7)
	require.NoError(t, err)

	userID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("one-secret")
	verifier := NewTokenService("another-secret")

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenService_RejectsWrongSigningMethod(t *testing.T) {
	svc := NewTokenService("test-secret")

	// alg=none tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1",
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsForeignIssuer(t *testing.T) {
	svc := NewTokenService("test-secret")

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"iss": "someone-else",
		"aud": tokenAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := foreign.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
