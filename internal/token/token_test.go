package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	svc := NewService(testSecret, "auth-backend", 7*24*time.Hour)

	tokenStr, err := svc.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	userID, err := svc.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyWrongSecret(t *testing.T) {
	svc := NewService(testSecret, "auth-backend", time.Hour)
	other := NewService("another-secret", "auth-backend", time.Hour)

	tokenStr, err := svc.Issue("user-123")
	require.NoError(t, err)

	_, err = other.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService(testSecret, "auth-backend", -time.Minute)

	tokenStr, err := svc.Issue("user-123")
	require.NoError(t, err)

	_, err = svc.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService(testSecret, "auth-backend", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	svc := NewService(testSecret, "auth-backend", time.Hour)
	other := NewService(testSecret, "someone-else", time.Hour)

	tokenStr, err := other.Issue("user-123")
	require.NoError(t, err)

	_, err = svc.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
