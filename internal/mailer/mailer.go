// Package mailer sends contact form notifications over SMTP.
//
// Delivery is best-effort: the contact endpoint stores the message first
// and only then attempts to notify; a failure here is logged and never
// surfaced to the caller.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/gbunao/portfolio-cms/internal/config"
)

// ErrDisabled is returned when mail sending is disabled by configuration.
var ErrDisabled = errors.New("mail sending is disabled")

// Mailer sends notification mails using the configured SMTP account.
type Mailer struct {
	cfg config.Mail
}

// New creates a Mailer from the mail configuration.
func New(cfg config.Mail) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendContactNotification mails the site owner about a new contact
// form submission.
func (m *Mailer) SendContactNotification(name, email, body string) error {
	if !m.cfg.Enabled {
		return ErrDisabled
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	text := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", name, email, body)

	msg := []byte("To: " + m.cfg.To + "\r\n" +
		"From: " + m.cfg.From + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		text + "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var a smtp.Auth
	if m.cfg.Username != "" {
		a = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	return smtp.SendMail(addr, a, m.cfg.From, []string{m.cfg.To}, msg)
}
