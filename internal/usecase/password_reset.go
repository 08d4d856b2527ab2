package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/security"
)

// PasswordResetUsecase defines the OTP-driven password reset flow.
type PasswordResetUsecase interface {
	// RequestPasswordReset issues a fresh reset code and mails it.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword validates the code and replaces the password hash.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

type passwordResetUsecase struct {
	userRepo  repository.UserRepository
	notifier  Notifier
	locks     *Locks
	expiresIn time.Duration
	logger    *zerolog.Logger
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
// expiresIn is the validity window of issued reset codes; it is kept much
// shorter than the verification window because a reset code grants control
// over the account.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	notifier Notifier,
	locks *Locks,
	expiresIn time.Duration,
	logger *zerolog.Logger,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo:  userRepo,
		notifier:  notifier,
		locks:     locks,
		expiresIn: expiresIn,
		logger:    logger,
	}
}

func (u *passwordResetUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	unlock := u.locks.Lock(user.ID.Hex())
	defer unlock()

	otp, err := security.GenerateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(u.expiresIn)
	if _, err := u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{
		PasswordResetCode:          &otp,
		PasswordResetCodeExpiresAt: &expiresAt,
	}); err != nil {
		return err
	}

	// Persisted first; a delivery failure surfaces but does not roll back
	// the stored code.
	return u.notifier.SendResetOTP(user.Email, otp, u.expiresIn)
}

func (u *passwordResetUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	unlock := u.locks.Lock(user.ID.Hex())
	defer unlock()

	// Re-read under the lock; a concurrent reset may have spent the code
	// between the lookup and the lock acquisition.
	user, err = u.userRepo.GetUser(ctx, user.ID.Hex())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.PasswordResetCode == "" || user.PasswordResetCode != otp {
		return ErrInvalidOTP
	}

	if time.Now().After(user.PasswordResetCodeExpiresAt) {
		return ErrOTPExpired
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Replacing the hash and clearing the code happen in one write so the
	// code is single use.
	cleared := ""
	var zero time.Time
	if _, err := u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{
		PasswordHash:               &passwordHash,
		PasswordResetCode:          &cleared,
		PasswordResetCodeExpiresAt: &zero,
	}); err != nil {
		return err
	}

	return nil
}
