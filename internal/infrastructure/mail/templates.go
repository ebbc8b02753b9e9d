package mail

import "strings"

const (
	verificationSubject = "Verify your Email"
	welcomeSubject      = "Welcome to Healthcare Booking"
)

const verificationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Verify your email</h2>
  <p>Use the code below to activate your account:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{verificationCode}</p>
  <p>If you did not sign up, you can ignore this mail.</p>
</div>`

const welcomeTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Welcome, {name}!</h2>
  <p>Your email has been verified and your account is now active.</p>
  <p>You can sign in and start using the service right away.</p>
</div>`

// VerificationEmail renders the one-time-code mail.
func VerificationEmail(code string) (subject, body string) {
	return verificationSubject, strings.ReplaceAll(verificationTemplate, "{verificationCode}", code)
}

// WelcomeEmail renders the post-verification welcome mail.
func WelcomeEmail(name string) (subject, body string) {
	return welcomeSubject, strings.ReplaceAll(welcomeTemplate, "{name}", name)
}
