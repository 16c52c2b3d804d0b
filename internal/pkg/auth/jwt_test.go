package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/clubr/internal/pkg/apperrors"
)

func newTestService() *TokenService {
	return NewTokenService(TokenConfig{
		SecretKey:   "test-secret",
		TokenTTL:    time.Hour,
		TokenIssuer: "clubr.test",
	})
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.Issue("session-1", "currentUser")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "currentUser", claims.Subject)
	assert.Equal(t, "clubr.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestService()
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, _, err := svc.Issue("session-1", "currentUser")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestTokenService_Rejects(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.Issue("session-1", "currentUser")
	require.NoError(t, err)

	other := NewTokenService(TokenConfig{SecretKey: "other", TokenTTL: time.Hour, TokenIssuer: "clubr.test"})
	_, err = other.ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid), "wrong secret")

	foreign := NewTokenService(TokenConfig{SecretKey: "test-secret", TokenTTL: time.Hour, TokenIssuer: "elsewhere"})
	_, err = foreign.ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid), "wrong issuer")

	_, err = svc.ValidateToken("")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))

	_, err = svc.ValidateToken("not.a.token")
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = ExtractBearerToken("abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = ExtractBearerToken("  ")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidFormat))
}
