package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
)

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	registerUser(t, env, "ann@x.com")

	require.NoError(t, env.passwordReset.RequestPasswordReset(ctx, "ann@x.com"))

	otp := env.notifier.lastResetOTP("ann@x.com")
	require.Len(t, otp, 6)

	require.NoError(t, env.passwordReset.ResetPassword(ctx, "ann@x.com", otp, "newpass1"))

	// The old password no longer works and the new one does.
	_, err := env.auth.Login(ctx, LoginParams{Email: "ann@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, LoginParams{Email: "ann@x.com", Password: "newpass1"})
	assert.NoError(t, err)

	stored, err := env.repo.GetUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Empty(t, stored.PasswordResetCode)
	assert.True(t, stored.PasswordResetCodeExpiresAt.IsZero())
}

func TestResetPasswordCodeIsSingleUse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	registerUser(t, env, "ann@x.com")

	require.NoError(t, env.passwordReset.RequestPasswordReset(ctx, "ann@x.com"))
	otp := env.notifier.lastResetOTP("ann@x.com")

	require.NoError(t, env.passwordReset.ResetPassword(ctx, "ann@x.com", otp, "newpass1"))

	err := env.passwordReset.ResetPassword(ctx, "ann@x.com", otp, "another")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestResetPasswordWrongCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	registerUser(t, env, "ann@x.com")

	require.NoError(t, env.passwordReset.RequestPasswordReset(ctx, "ann@x.com"))

	err := env.passwordReset.ResetPassword(ctx, "ann@x.com", "000000", "newpass1")
	assert.ErrorIs(t, err, ErrInvalidOTP)

	// A failed attempt does not touch the password.
	_, err = env.auth.Login(ctx, LoginParams{Email: "ann@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestResetPasswordExpiredCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userID := registerUser(t, env, "ann@x.com")

	require.NoError(t, env.passwordReset.RequestPasswordReset(ctx, "ann@x.com"))
	otp := env.notifier.lastResetOTP("ann@x.com")

	past := time.Now().Add(-time.Minute)
	_, err := env.repo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		PasswordResetCodeExpiresAt: &past,
	})
	require.NoError(t, err)

	err = env.passwordReset.ResetPassword(ctx, "ann@x.com", otp, "newpass1")
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	env := newTestEnv()

	err := env.passwordReset.RequestPasswordReset(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	env := newTestEnv()

	err := env.passwordReset.ResetPassword(context.Background(), "nobody@x.com", "123456", "newpass1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRequestPasswordResetReplacesPreviousCode(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	registerUser(t, env, "ann@x.com")

	require.NoError(t, env.passwordReset.RequestPasswordReset(ctx, "ann@x.com"))
	first := env.notifier.lastResetOTP("ann@x.com")

	require.NoError(t, env.passwordReset.RequestPasswordReset(ctx, "ann@x.com"))
	second := env.notifier.lastResetOTP("ann@x.com")

	stored, err := env.repo.GetUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, second, stored.PasswordResetCode)

	if first != second {
		err := env.passwordReset.ResetPassword(ctx, "ann@x.com", first, "newpass1")
		assert.ErrorIs(t, err, ErrInvalidOTP)
	}
}
