package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a user account and all of its credential state.
//
// The two one-time-code channels are independent: an outstanding
// verification code does not block a password reset and vice versa. A code
// and its expiry are either both set or both cleared; expired codes may
// linger until the next validation attempt overwrites or clears them.
type User struct {
	ID                         bson.ObjectID `bson:"_id,omitempty"`
	Name                       string        `bson:"name"`
	Email                      string        `bson:"email"`
	PasswordHash               string        `bson:"password_hash"`
	Verified                   bool          `bson:"verified"`
	VerificationCode           string        `bson:"verification_code"`
	VerificationCodeExpiresAt  time.Time     `bson:"verification_code_expires_at"`
	PasswordResetCode          string        `bson:"password_reset_code"`
	PasswordResetCodeExpiresAt time.Time     `bson:"password_reset_code_expires_at"`
	CreatedAt                  time.Time     `bson:"created_at"`
	UpdatedAt                  time.Time     `bson:"updated_at"`
}
