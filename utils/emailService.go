package utils

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rajdwivedi/aeonaxy-server/config"
)

const resendEndpoint = "https://api.resend.com/emails"

var emailClient = resty.New().SetTimeout(10 * time.Second)

// sendEmail delivers a transactional email through the Resend API.
func sendEmail(to, subject, htmlBody string) error {
	resp, err := emailClient.R().
		SetAuthToken(config.AppConfig.ResendAPIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"from":    config.AppConfig.EmailSender,
			"to":      to,
			"subject": subject,
			"html":    htmlBody,
		}).
		Post(resendEndpoint)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.IsError() {
		log.Printf("Resend rejected email to %s: %s %s", to, resp.Status(), resp.String())
		return fmt.Errorf("email delivery failed: %s", resp.Status())
	}
	return nil
}

// SendVerificationEmail mails the email-verification link. Delivery runs in
// the background; failures are logged, not surfaced to the request.
func SendVerificationEmail(name, email, verificationToken string) {
	link := fmt.Sprintf("%s/api/user/verifyEmail?email=%s&token=%s",
		config.AppConfig.AppBaseURL, url.QueryEscape(email), url.QueryEscape(verificationToken))
	body := fmt.Sprintf(`
	<p>Hey %s,</p>
	<p>An account was created using this email ID. Here is the verification link:</p>
	<p><a href="%s" target="_blank">Verify Email</a></p>
	<p>If you did not make this request, please contact support.</p>
	`, name, link)

	go sendEmail(email, "Email Verification", body)
}

// SendPasswordResetEmail mails the password-reset link together with the
// link that invalidates it.
func SendPasswordResetEmail(name, email, resetToken string) {
	link := fmt.Sprintf("%s/api/user/resetPassword?email=%s&token=%s",
		config.AppConfig.AppBaseURL, url.QueryEscape(email), url.QueryEscape(resetToken))
	invalidateLink := fmt.Sprintf("%s/api/user/invalidateResetPassword?email=%s&token=%s",
		config.AppConfig.AppBaseURL, url.QueryEscape(email), url.QueryEscape(resetToken))
	body := fmt.Sprintf(`
	<p>Hey %s,</p>
	<p>You requested a password reset. Here is the password reset link (valid for 24 hours):</p>
	<p><a href="%s" target="_blank">Reset Password</a></p>
	<p>If you did not make this request, click here to invalidate the link right now: %s</p>
	`, name, link, invalidateLink)

	go sendEmail(email, "Password Reset", body)
}
