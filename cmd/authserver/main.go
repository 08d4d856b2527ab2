package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/config"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/handler"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/mailer"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/repository"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/token"
	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "authserver").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if !cfg.IsProduction() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := cfg.SMTP.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate mailer configuration")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.MongoDatabase)
	userRepo := repository.NewUserMongoRepository(pingCtx, &logger, db)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenIssuer, cfg.SessionTokenExpiresIn)
	notifier := mailer.New(&logger, cfg.SMTP)
	locks := usecase.NewLocks()

	authUsecase := usecase.NewAuthUsecase(userRepo, tokens, notifier, &logger)
	verificationUsecase := usecase.NewVerificationUsecase(userRepo, notifier, locks, cfg.VerifyOTPExpiresIn, &logger)
	passwordResetUsecase := usecase.NewPasswordResetUsecase(userRepo, notifier, locks, cfg.ResetOTPExpiresIn, &logger)
	userUsecase := usecase.NewUserUsecase(userRepo)

	validator := handler.NewValidator()
	authHandler := handler.NewAuthHandler(cfg, &logger, validator, authUsecase, verificationUsecase, passwordResetUsecase)
	userHandler := handler.NewUserHandler(&logger, userUsecase)

	router := handler.NewRouter(cfg, &logger, tokens, authHandler, userHandler)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	logger.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Environment).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
}
