package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/config"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/middleware"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/token"
)

// NewRouter builds the HTTP routing tree for the auth server.
func NewRouter(
	cfg *config.Config,
	logger *zerolog.Logger,
	tokens *token.Service,
	authHandler *AuthHandler,
	userHandler *UserHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	sessionAuth := middleware.SessionAuth(tokens)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, true, "welcome to the auth API")
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Post("/send-reset-otp", authHandler.SendResetOTP)
		r.Post("/reset-password", authHandler.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)
			r.Post("/send-verify-otp", authHandler.SendVerifyOTP)
			r.Post("/verify-account", authHandler.VerifyEmail)
			r.Get("/is-auth", authHandler.IsAuthenticated)
		})
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(sessionAuth)
		r.Get("/data", userHandler.GetUserData)
	})

	return r
}
