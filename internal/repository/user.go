package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/model"
)

var (
	// ErrNotFound is returned when no user matches the given identifier.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when creating a user whose email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related storage operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error)
}

// UpdateUserParams defines the optional parameters for updating a user.
// Only the fields that are not nil will be updated; a pointer to the zero
// value clears the field, which is how a spent one-time code is removed in
// the same write that applies its effect.
type UpdateUserParams struct {
	PasswordHash               *string
	Verified                   *bool
	VerificationCode           *string
	VerificationCodeExpiresAt  *time.Time
	PasswordResetCode          *string
	PasswordResetCodeExpiresAt *time.Time
}
