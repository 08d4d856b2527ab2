// Package usecase implements the credential lifecycle operations.
package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/model"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/security"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/token"
)

// AuthUsecase defines registration and login.
type AuthUsecase interface {
	// Register creates a user and returns a session token for it.
	Register(ctx context.Context, params RegisterParams) (string, error)

	// Login checks the credentials and returns a session token.
	Login(ctx context.Context, params LoginParams) (string, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	notifier Notifier
	logger   *zerolog.Logger
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	userRepo repository.UserRepository,
	tokens *token.Service,
	notifier Notifier,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (string, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return "", err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailAlreadyRegistered
		}
		return "", err
	}

	// The welcome mail must not block account creation. This is the only
	// place a notifier failure is swallowed.
	if err := u.notifier.SendWelcome(user.Email); err != nil {
		u.logger.Warn().Err(err).Str("email", user.Email).Msg("failed to send welcome email")
	}

	return u.tokens.Issue(user.ID.Hex())
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	return u.tokens.Issue(user.ID.Hex())
}
