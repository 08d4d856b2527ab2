package mailer

import "strings"

const emailVerifyTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Verify your account</h2>
    <p>You are trying to verify the account registered with <strong>{{email}}</strong>.</p>
    <p>Use the code below to complete the verification:</p>
    <p style="font-size: 24px; letter-spacing: 4px; font-weight: bold;">{{otp}}</p>
    <p>If you did not request this, you can safely ignore this email.</p>
  </body>
</html>`

const passwordResetTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Password reset request</h2>
    <p>We received a request to reset the password for <strong>{{email}}</strong>.</p>
    <p>Use the code below to reset your password:</p>
    <p style="font-size: 24px; letter-spacing: 4px; font-weight: bold;">{{otp}}</p>
    <p>If you did not request a password reset, your account remains secure.</p>
  </body>
</html>`

func renderTemplate(tmpl, otp, email string) string {
	return strings.NewReplacer("{{otp}}", otp, "{{email}}", email).Replace(tmpl)
}
