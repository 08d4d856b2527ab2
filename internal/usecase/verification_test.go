package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
)

func registerUser(t *testing.T, env *testEnv, email string) string {
	t.Helper()

	_, err := env.auth.Register(context.Background(), RegisterParams{
		Name:     "Ann",
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)

	user, err := env.repo.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	return user.ID.Hex()
}

func TestVerifyEmailFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	require.NoError(t, env.verification.SendVerifyOTP(ctx, userID))

	otp := env.notifier.lastVerifyOTP("ann@x.com")
	require.Len(t, otp, 6)

	stored, err := env.repo.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, otp, stored.VerificationCode)
	assert.False(t, stored.VerificationCodeExpiresAt.IsZero())

	require.NoError(t, env.verification.VerifyEmail(ctx, userID, otp))

	stored, err = env.repo.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.Empty(t, stored.VerificationCode)
	assert.True(t, stored.VerificationCodeExpiresAt.IsZero())
}

func TestVerifyEmailCodeIsSingleUse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	require.NoError(t, env.verification.SendVerifyOTP(ctx, userID))
	otp := env.notifier.lastVerifyOTP("ann@x.com")

	require.NoError(t, env.verification.VerifyEmail(ctx, userID, otp))

	err := env.verification.VerifyEmail(ctx, userID, otp)
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyEmailWrongCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	require.NoError(t, env.verification.SendVerifyOTP(ctx, userID))

	err := env.verification.VerifyEmail(ctx, userID, "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyEmailWithoutRequestedCode(t *testing.T) {
	env := newTestEnv()
	userID := registerUser(t, env, "ann@x.com")

	// No code was ever issued; an empty guess must not match the empty
	// stored code.
	err := env.verification.VerifyEmail(context.Background(), userID, "")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	require.NoError(t, env.verification.SendVerifyOTP(ctx, userID))
	otp := env.notifier.lastVerifyOTP("ann@x.com")

	past := time.Now().Add(-time.Minute)
	_, err := env.repo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		VerificationCodeExpiresAt: &past,
	})
	require.NoError(t, err)

	err = env.verification.VerifyEmail(ctx, userID, otp)
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestSendVerifyOTPAlreadyVerified(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	require.NoError(t, env.verification.SendVerifyOTP(ctx, userID))
	otp := env.notifier.lastVerifyOTP("ann@x.com")
	require.NoError(t, env.verification.VerifyEmail(ctx, userID, otp))

	err := env.verification.SendVerifyOTP(ctx, userID)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestSendVerifyOTPUnknownUser(t *testing.T) {
	env := newTestEnv()

	err := env.verification.SendVerifyOTP(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendVerifyOTPMailFailureKeepsCode(t *testing.T) {
	env := newTestEnv()
	env.notifier.verifyErr = errors.New("smtp unavailable")
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	err := env.verification.SendVerifyOTP(ctx, userID)
	require.Error(t, err)

	stored, err := env.repo.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.VerificationCode)
}

func TestSendVerifyOTPReplacesPreviousCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	require.NoError(t, env.verification.SendVerifyOTP(ctx, userID))
	first, err := env.repo.GetUser(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, env.verification.SendVerifyOTP(ctx, userID))
	second, err := env.repo.GetUser(ctx, userID)
	require.NoError(t, err)

	// Only the latest issued code is valid.
	assert.Equal(t, env.notifier.lastVerifyOTP("ann@x.com"), second.VerificationCode)
	if first.VerificationCode != second.VerificationCode {
		err := env.verification.VerifyEmail(ctx, userID, first.VerificationCode)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	}
}
