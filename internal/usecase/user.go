package usecase

import (
	"context"
	"errors"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
)

// UserUsecase exposes read-only queries over the user record.
type UserUsecase interface {
	GetUserData(ctx context.Context, userID string) (*UserData, error)
}

// UserData is the public projection of a user record.
type UserData struct {
	Name     string
	Email    string
	Verified bool
}

type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of UserUsecase.
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetUserData(ctx context.Context, userID string) (*UserData, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &UserData{
		Name:     user.Name,
		Email:    user.Email,
		Verified: user.Verified,
	}, nil
}
