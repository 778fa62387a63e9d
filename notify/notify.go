// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/ticket-day/cliparse"
)

// Notifier delivers one attendee's ticket number. Implementations are
// best-effort; a failed delivery is the caller's to log, never to retry into
// the state machine.
type Notifier interface {
	Notify(email, fullName string, number int) error
}

// SMTPNotifier sends ticket notifications over plain SMTP.
type SMTPNotifier struct {
	host string
	port int
	from string
	auth smtp.Auth
}

// NewSMTPNotifier builds a notifier from config. Auth is used only when a
// username is configured.
func NewSMTPNotifier(cfg cliparse.Config) *SMTPNotifier {
	var a smtp.Auth
	if cfg.SMTPUsername != "" {
		a = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPNotifier{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		from: cfg.SMTPFrom,
		auth: a,
	}
}

// Notify sends the assigned number to one attendee.
func (n *SMTPNotifier) Notify(email, fullName string, number int) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", n.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", email))
	msg.WriteString("Subject: Your ticket number\r\n")
	msg.WriteString(fmt.Sprintf("Message-ID: <%s@ticket-day>\r\n", uuid.New().String()))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf("Hi %s,\r\n\r\nYour assigned ticket number is %d.\r\n", fullName, number))

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	if err := smtp.SendMail(addr, n.auth, n.from, []string{email}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", email, err)
	}
	return nil
}

// LogNotifier stands in when SMTP is not configured: it records the would-be
// notification in the log and always succeeds.
type LogNotifier struct{}

func (LogNotifier) Notify(email, fullName string, number int) error {
	slog.Info("notification suppressed (SMTP not configured)",
		"email", email,
		"ticket_number", number,
	)
	return nil
}

// FromConfig picks the SMTP notifier when a host is configured, otherwise the
// logging stand-in.
func FromConfig(cfg cliparse.Config) Notifier {
	if cfg.SMTPHost == "" {
		return LogNotifier{}
	}
	return NewSMTPNotifier(cfg)
}
