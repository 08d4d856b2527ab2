// Package handler serves the HTTP API of the auth server.
package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/config"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/middleware"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/usecase"
)

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	cfg           *config.Config
	logger        *zerolog.Logger
	validator     *Validator
	auth          usecase.AuthUsecase
	verification  usecase.VerificationUsecase
	passwordReset usecase.PasswordResetUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	cfg *config.Config,
	logger *zerolog.Logger,
	validator *Validator,
	auth usecase.AuthUsecase,
	verification usecase.VerificationUsecase,
	passwordReset usecase.PasswordResetUsecase,
) *AuthHandler {
	return &AuthHandler{
		cfg:           cfg,
		logger:        logger,
		validator:     validator,
		auth:          auth,
		verification:  verification,
		passwordReset: passwordReset,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := parseJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}

	sessionToken, err := h.auth.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyRegistered) {
			writeMessage(w, http.StatusConflict, false, "user already exists")
			return
		}
		h.logger.Error().Err(err).Msg("failed to register user")
		writeMessage(w, http.StatusInternalServerError, false, "something went wrong")
		return
	}

	h.setSessionCookie(w, sessionToken)
	writeMessage(w, http.StatusCreated, true, "user registered successfully")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := parseJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}

	sessionToken, err := h.auth.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, false, "user not found")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			writeMessage(w, http.StatusUnauthorized, false, "invalid password")
		default:
			h.logger.Error().Err(err).Msg("failed to login user")
			writeMessage(w, http.StatusInternalServerError, false, "something went wrong")
		}
		return
	}

	h.setSessionCookie(w, sessionToken)
	writeMessage(w, http.StatusOK, true, "user logged in successfully")
}

// Logout handles POST /api/auth/logout. The token itself stays valid until
// its natural expiry; logout only instructs the client to drop it.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, true, "user logged out successfully")
}

// SendVerifyOTP handles POST /api/auth/send-verify-otp.
func (h *AuthHandler) SendVerifyOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "not authorized, login again")
		return
	}

	if err := h.verification.SendVerifyOTP(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, false, "user not found")
		case errors.Is(err, usecase.ErrAlreadyVerified):
			writeMessage(w, http.StatusConflict, false, "user is already verified")
		default:
			h.logger.Error().Err(err).Msg("failed to send verification OTP")
			writeMessage(w, http.StatusInternalServerError, false, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "OTP sent to your email")
}

// VerifyEmail handles POST /api/auth/verify-account.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "not authorized, login again")
		return
	}

	var req VerifyEmailRequest
	if err := parseJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}

	if err := h.verification.VerifyEmail(r.Context(), userID, req.OTP); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, false, "user not found")
		case errors.Is(err, usecase.ErrInvalidOTP):
			writeMessage(w, http.StatusUnauthorized, false, "invalid OTP")
		case errors.Is(err, usecase.ErrOTPExpired):
			writeMessage(w, http.StatusGone, false, "OTP is expired")
		default:
			h.logger.Error().Err(err).Msg("failed to verify email")
			writeMessage(w, http.StatusInternalServerError, false, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "email verified successfully")
}

// IsAuthenticated handles GET /api/auth/is-auth. Reaching it at all means
// the session guard accepted the token.
func (h *AuthHandler) IsAuthenticated(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, true, "user is authenticated")
}

// SendResetOTP handles POST /api/auth/send-reset-otp.
func (h *AuthHandler) SendResetOTP(w http.ResponseWriter, r *http.Request) {
	var req SendResetOTPRequest
	if err := parseJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}

	if err := h.passwordReset.RequestPasswordReset(r.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, false, "user not found")
			return
		}
		h.logger.Error().Err(err).Msg("failed to send reset OTP")
		writeMessage(w, http.StatusInternalServerError, false, "something went wrong")
		return
	}

	writeMessage(w, http.StatusOK, true, "OTP sent to your email")
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := parseJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, err.Error())
		return
	}

	if err := h.passwordReset.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, false, "user not found")
		case errors.Is(err, usecase.ErrInvalidOTP):
			writeMessage(w, http.StatusUnauthorized, false, "invalid OTP")
		case errors.Is(err, usecase.ErrOTPExpired):
			writeMessage(w, http.StatusGone, false, "OTP is expired")
		default:
			h.logger.Error().Err(err).Msg("failed to reset password")
			writeMessage(w, http.StatusInternalServerError, false, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "password reset successful")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionToken string) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.cfg.SessionTokenExpiresIn.Seconds()),
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
	// Cross-site frontends need SameSite=None, which browsers only accept
	// over TLS.
	if h.cfg.IsProduction() {
		cookie.SameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, cookie)
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
	if h.cfg.IsProduction() {
		cookie.SameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, cookie)
}
