package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/middleware"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/usecase"
)

// UserHandler serves the /api/user routes.
type UserHandler struct {
	logger *zerolog.Logger
	users  usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(logger *zerolog.Logger, users usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  users,
	}
}

// GetUserData handles GET /api/user/data.
func (h *UserHandler) GetUserData(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "not authorized, login again")
		return
	}

	data, err := h.users.GetUserData(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, false, "user not found")
			return
		}
		h.logger.Error().Err(err).Msg("failed to get user data")
		writeMessage(w, http.StatusInternalServerError, false, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, userDataEnvelope{
		Success: true,
		UserData: UserDataResponse{
			Name:              data.Name,
			Email:             data.Email,
			IsAccountVerified: data.Verified,
		},
	})
}
