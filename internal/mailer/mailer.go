// Package mailer sends account emails over SMTP.
package mailer

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings for the mailer. The fields are tagged for
// environment parsing under the SMTP_ prefix.
type Config struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
}

// Validate checks if the mailer configuration is complete.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}

// Mailer delivers welcome, verification and password reset emails. It
// implements usecase.Notifier.
type Mailer struct {
	config Config
	dialer *gomail.Dialer
	logger *zerolog.Logger
}

// New creates a Mailer with the given configuration.
func New(logger *zerolog.Logger, cfg Config) *Mailer {
	dialer := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
	)

	return &Mailer{
		config: cfg,
		dialer: dialer,
		logger: logger,
	}
}

// SendWelcome sends the account creation notice.
func (m *Mailer) SendWelcome(email string) error {
	body := fmt.Sprintf("Welcome! Your account has been created with email id: %s", email)
	return m.send(email, "Welcome to My Website", body, "")
}

// SendVerifyOTP sends the email verification one-time code.
func (m *Mailer) SendVerifyOTP(email, otp string, validFor time.Duration) error {
	body := fmt.Sprintf("Your OTP is %s. Verify your account using this OTP within %s.", otp, validFor)
	return m.send(email, "Account Verification", body, renderTemplate(emailVerifyTemplate, otp, email))
}

// SendResetOTP sends the password reset one-time code.
func (m *Mailer) SendResetOTP(email, otp string, validFor time.Duration) error {
	body := fmt.Sprintf("Your password reset OTP is %s. Reset your password using this OTP within %s.", otp, validFor)
	return m.send(email, "Password Reset Request", body, renderTemplate(passwordResetTemplate, otp, email))
}

func (m *Mailer) send(to, subject, body, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	if htmlBody != "" {
		msg.SetBody("text/html", htmlBody)
		if body != "" {
			msg.AddAlternative("text/plain", body)
		}
	} else {
		msg.SetBody("text/plain", body)
	}

	return m.dialer.DialAndSend(msg)
}
