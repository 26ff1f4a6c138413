package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"work-wizard/internal/config"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends over plain SMTP with optional AUTH. One attempt per
// message; the caller decides what a failure means.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	m := &SMTPMailer{
		addr: cfg.Host + ":" + cfg.Port,
		from: cfg.From,
	}
	if cfg.Username != "" {
		m.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return m
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("empty recipient")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(b.String()))
}
