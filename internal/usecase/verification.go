package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/security"
)

// VerificationUsecase defines the email verification flow.
type VerificationUsecase interface {
	// SendVerifyOTP issues a fresh verification code and mails it.
	SendVerifyOTP(ctx context.Context, userID string) error

	// VerifyEmail validates the code and marks the account verified.
	VerifyEmail(ctx context.Context, userID, otp string) error
}

var (
	ErrAlreadyVerified = errors.New("account is already verified")
	ErrInvalidOTP      = errors.New("invalid OTP")
	ErrOTPExpired      = errors.New("OTP has expired")
)

type verificationUsecase struct {
	userRepo  repository.UserRepository
	notifier  Notifier
	locks     *Locks
	expiresIn time.Duration
	logger    *zerolog.Logger
}

// NewVerificationUsecase creates a new instance of VerificationUsecase.
// expiresIn is the validity window of issued verification codes.
func NewVerificationUsecase(
	userRepo repository.UserRepository,
	notifier Notifier,
	locks *Locks,
	expiresIn time.Duration,
	logger *zerolog.Logger,
) VerificationUsecase {
	return &verificationUsecase{
		userRepo:  userRepo,
		notifier:  notifier,
		locks:     locks,
		expiresIn: expiresIn,
		logger:    logger,
	}
}

func (u *verificationUsecase) SendVerifyOTP(ctx context.Context, userID string) error {
	unlock := u.locks.Lock(userID)
	defer unlock()

	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.Verified {
		return ErrAlreadyVerified
	}

	otp, err := security.GenerateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(u.expiresIn)
	if _, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		VerificationCode:          &otp,
		VerificationCodeExpiresAt: &expiresAt,
	}); err != nil {
		return err
	}

	// The code is persisted before the mail goes out; a delivery failure
	// surfaces to the caller but leaves the stored code valid.
	return u.notifier.SendVerifyOTP(user.Email, otp, u.expiresIn)
}

func (u *verificationUsecase) VerifyEmail(ctx context.Context, userID, otp string) error {
	unlock := u.locks.Lock(userID)
	defer unlock()

	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// An empty stored code never matches: a spent or never-issued code is
	// indistinguishable from a wrong one.
	if user.VerificationCode == "" || user.VerificationCode != otp {
		return ErrInvalidOTP
	}

	if time.Now().After(user.VerificationCodeExpiresAt) {
		return ErrOTPExpired
	}

	// Marking verified and clearing the code happen in one write so the
	// code is single use.
	verified := true
	cleared := ""
	var zero time.Time
	if _, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		Verified:                  &verified,
		VerificationCode:          &cleared,
		VerificationCodeExpiresAt: &zero,
	}); err != nil {
		return err
	}

	return nil
}
