package usecase

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/token"
)

// fakeNotifier records the emails it was asked to deliver and can be made
// to fail any channel.
type fakeNotifier struct {
	mu sync.Mutex

	welcomeSent []string
	verifyOTP   map[string]string
	resetOTP    map[string]string

	welcomeErr error
	verifyErr  error
	resetErr   error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		verifyOTP: make(map[string]string),
		resetOTP:  make(map[string]string),
	}
}

func (f *fakeNotifier) SendWelcome(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.welcomeErr != nil {
		return f.welcomeErr
	}
	f.welcomeSent = append(f.welcomeSent, email)
	return nil
}

func (f *fakeNotifier) SendVerifyOTP(email, otp string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.verifyErr != nil {
		return f.verifyErr
	}
	f.verifyOTP[email] = otp
	return nil
}

func (f *fakeNotifier) SendResetOTP(email, otp string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resetOTP[email] = otp
	return nil
}

func (f *fakeNotifier) lastVerifyOTP(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verifyOTP[email]
}

func (f *fakeNotifier) lastResetOTP(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resetOTP[email]
}

// testEnv wires the usecases against the in-memory store.
type testEnv struct {
	repo     repository.UserRepository
	notifier *fakeNotifier
	tokens   *token.Service

	auth          AuthUsecase
	verification  VerificationUsecase
	passwordReset PasswordResetUsecase
	users         UserUsecase
}

func newTestEnv() *testEnv {
	logger := zerolog.Nop()
	repo := repository.NewUserMemoryRepository()
	notifier := newFakeNotifier()
	tokens := token.NewService("test-secret", "auth-backend", 7*24*time.Hour)
	locks := NewLocks()

	return &testEnv{
		repo:          repo,
		notifier:      notifier,
		tokens:        tokens,
		auth:          NewAuthUsecase(repo, tokens, notifier, &logger),
		verification:  NewVerificationUsecase(repo, notifier, locks, 24*time.Hour, &logger),
		passwordReset: NewPasswordResetUsecase(repo, notifier, locks, 15*time.Minute, &logger),
		users:         NewUserUsecase(repo),
	}
}
