package usecase

import "time"

// Notifier delivers account emails to a user's registered address.
// Delivery is best effort; each caller decides whether a failure is fatal.
type Notifier interface {
	// SendWelcome delivers the account creation notice.
	SendWelcome(email string) error

	// SendVerifyOTP delivers an email verification one-time code.
	SendVerifyOTP(email, otp string, validFor time.Duration) error

	// SendResetOTP delivers a password reset one-time code.
	SendResetOTP(email, otp string, validFor time.Duration) error
}
