package handler

// Request payloads for the auth API. Validation failures are reported
// before any storage access.

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	OTP string `json:"otp" validate:"required"`
}

type SendResetOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	OTP         string `json:"otp"         validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UserDataResponse is the payload of GET /api/user/data.
type UserDataResponse struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	IsAccountVerified bool   `json:"isAccountVerified"`
}
