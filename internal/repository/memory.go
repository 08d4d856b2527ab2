package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/model"
)

// userMemoryRepository is an in-memory UserRepository used by tests and for
// running the server without a database.
type userMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string
}

// NewUserMemoryRepository creates an empty in-memory UserRepository.
func NewUserMemoryRepository() UserRepository {
	return &userMemoryRepository{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

func (r *userMemoryRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, ErrDuplicateEmail
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.byID[user.ID.Hex()] = &stored
	r.byEmail[user.Email] = user.ID.Hex()

	return user, nil
}

func (r *userMemoryRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *userMemoryRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *r.byID[id]
	return &copied, nil
}

func (r *userMemoryRepository) UpdateUser(
	_ context.Context,
	id string,
	params UpdateUserParams,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.Verified != nil {
		user.Verified = *params.Verified
	}
	if params.VerificationCode != nil {
		user.VerificationCode = *params.VerificationCode
	}
	if params.VerificationCodeExpiresAt != nil {
		user.VerificationCodeExpiresAt = *params.VerificationCodeExpiresAt
	}
	if params.PasswordResetCode != nil {
		user.PasswordResetCode = *params.PasswordResetCode
	}
	if params.PasswordResetCodeExpiresAt != nil {
		user.PasswordResetCodeExpiresAt = *params.PasswordResetCodeExpiresAt
	}
	user.UpdatedAt = time.Now()

	copied := *user
	return &copied, nil
}
