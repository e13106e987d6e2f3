package notifications

import (
	"fmt"
	"html"

	"github.com/you/jobsvc/domain"
)

const appName = "Job Search app"

const htmlLayout = `<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4;">
  <div style="background-color: #ffffff; margin: 50px auto; padding: 20px; max-width: 600px;">
    <h1 style="background-color: #4CAF50; color: white; text-align: center;">%s</h1>
    <p>Dear %s,</p>
    <p>%s</p>
    <p><a href="%s" style="background-color: #4CAF50; color: white; padding: 15px 25px; text-decoration: none;">%s</a></p>
    <p>%s</p>
    <p>Best regards,<br>%s</p>
  </div>
</body>
</html>`

// ConfirmationMail asks a new account holder to confirm their address.
func ConfirmationMail(to, name, link string) domain.Mail {
	const (
		intro  = "Thank you for signing up with us! To complete your registration, please click the link below to confirm your account:"
		ignore = "If you did not sign up for this account, please ignore this email."
	)
	return domain.Mail{
		To:      to,
		Subject: "Confirm Your Account",
		Text:    fmt.Sprintf("Dear %s,\n%s\n%s\n%s\nBest regards,\n%s", name, intro, link, ignore, appName),
		HTML:    render("Welcome to "+appName, name, intro, link, "Confirm Account", ignore),
	}
}

// ResetMail carries the password reset link.
func ResetMail(to, name, link string) domain.Mail {
	const (
		intro  = "To reset your password, please click the link below:"
		ignore = "If you did not request a password reset, please ignore this email."
	)
	return domain.Mail{
		To:      to,
		Subject: "Reset Your Password",
		Text:    fmt.Sprintf("Dear %s,\n%s\n%s\n%s\nBest regards,\n%s", name, intro, link, ignore, appName),
		HTML:    render("Reset Your Password", name, intro, link, "Reset Password", ignore),
	}
}

// ResetRequestedSMS is the short notice sent to the account's mobile number.
func ResetRequestedSMS() string {
	return appName + ": a password reset was requested for your account. If this was not you, ignore this message."
}

func render(title, name, intro, link, button, ignore string) string {
	e := html.EscapeString
	return fmt.Sprintf(htmlLayout, e(title), e(name), e(intro), e(link), e(button), e(ignore), e(appName))
}
