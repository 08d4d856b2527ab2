// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/SalaitSudhakar/Authentication-Authorization-Backend/internal/mailer"
)

// Config holds the runtime configuration for the auth server.
type Config struct {
	Environment string `env:"APP_ENV"   envDefault:"development"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":5000"`

	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"auth"`

	JWTSecret             string        `env:"JWT_SECRET"`
	TokenIssuer           string        `env:"TOKEN_ISSUER"              envDefault:"auth-backend"`
	SessionTokenExpiresIn time.Duration `env:"SESSION_TOKEN_EXPIRES_IN"  envDefault:"168h"`
	VerifyOTPExpiresIn    time.Duration `env:"VERIFY_OTP_EXPIRES_IN"     envDefault:"24h"`
	ResetOTPExpiresIn     time.Duration `env:"RESET_OTP_EXPIRES_IN"      envDefault:"15m"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	SMTP mailer.Config `envPrefix:"SMTP_"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if c.SessionTokenExpiresIn <= 0 {
		return fmt.Errorf("SESSION_TOKEN_EXPIRES_IN must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode, which
// tightens the session cookie attributes.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
