// Package middleware provides the HTTP middleware for the auth server.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/token"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

type contextKey struct{}

var userIDKey = contextKey{}

// SessionAuth validates the session cookie and attaches the authenticated
// user ID to the request context. Requests without a valid token never
// reach the protected handler; unexpected verification failures reject
// with a server error rather than granting access.
func SessionAuth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeFailure(w, http.StatusUnauthorized, "token is missing")
				return
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenExpired):
					writeFailure(w, http.StatusUnauthorized, "session has expired, login again")
				case errors.Is(err, token.ErrInvalidToken):
					writeFailure(w, http.StatusUnauthorized, "not authorized, login again")
				default:
					writeFailure(w, http.StatusInternalServerError, "something went wrong")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user ID set by SessionAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
