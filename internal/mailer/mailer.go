// Package mailer sends transactional email over SMTP: verification codes,
// purchase requests and moderation notices.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/InderX84/FarmX/config"
)

// Mailer sends email through a configured SMTP relay.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer builds a Mailer from the server configuration. Returns nil when
// SMTP is not configured; callers treat a nil mailer as "email disabled".
func NewMailer(cfg *config.Configuration) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     from,
	}
}

// Send delivers a single HTML email.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// SendOTP sends the email verification code.
func (m *Mailer) SendOTP(to, name, code string) error {
	subject := "Verify your email address"
	body := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
			<h2>Hello %s,</h2>
			<p>Use the following code to verify your email address:</p>
			<div style="font-size:32px;font-weight:bold;letter-spacing:8px;padding:16px;background:#f4f4f4;text-align:center;border-radius:6px;">%s</div>
			<p>This code expires in 10 minutes. If you did not create an account, you can ignore this email.</p>
		</div>`, name, code)
	return m.Send(to, subject, body)
}

// SendPurchaseRequest relays a buyer's purchase request to the mod owner.
func (m *Mailer) SendPurchaseRequest(to, modTitle, buyerName, buyerEmail, message string) error {
	subject := fmt.Sprintf("Purchase request for %s", modTitle)
	body := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
			<h2>New purchase request</h2>
			<p><strong>Mod:</strong> %s</p>
			<p><strong>Buyer:</strong> %s (%s)</p>
			<p><strong>Message:</strong></p>
			<blockquote style="border-left:3px solid #ccc;padding-left:12px;color:#555;">%s</blockquote>
			<p>Reply directly to the buyer to arrange payment and delivery.</p>
		</div>`, modTitle, buyerName, buyerEmail, message)
	return m.Send(to, subject, body)
}

// SendModerationNotice informs a creator that a mod was approved or rejected.
func (m *Mailer) SendModerationNotice(to, name, modTitle, status, reason string) error {
	subject := fmt.Sprintf("Your mod %q was %s", modTitle, status)
	reasonHTML := ""
	if reason != "" {
		reasonHTML = fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", reason)
	}
	body := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
			<h2>Hello %s,</h2>
			<p>Your mod <strong>%s</strong> has been <strong>%s</strong>.</p>
			%s
		</div>`, name, modTitle, status, reasonHTML)
	return m.Send(to, subject, body)
}
