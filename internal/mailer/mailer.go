package mailer

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends a single HTML message. Order submission uses it once per
// call to dispatch the confirmation link; sending is synchronous and
// best-effort.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPConfig holds the connection settings for the SMTP mailer
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether a host was provided. Without one the
// application falls back to the log-only mailer.
func (c SMTPConfig) Configured() bool {
	return c.Host != ""
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer that delivers through the configured
// SMTP server
func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

type logMailer struct{}

// NewLogMailer creates a Mailer that only logs the message. Used in
// development when no SMTP server is configured.
func NewLogMailer() Mailer {
	return &logMailer{}
}

func (m *logMailer) Send(to, subject, htmlBody string) error {
	log.WithFields(log.Fields{
		"to":      to,
		"subject": subject,
	}).Info("SMTP not configured, logging email instead of sending")
	log.Debug(htmlBody)
	return nil
}
