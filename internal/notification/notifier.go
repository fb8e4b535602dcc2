package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"coworking-booking/internal/pkg/config"
)

// Notifier delivers a rendered message. Implementations may change the
// channel (SMTP today, anything with an address tomorrow).
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsoleNotifier logs instead of sending; the default when SMTP is not
// configured and the implementation tests run against.
type ConsoleNotifier struct {
	logger *slog.Logger
}

func NewConsoleNotifier(logger *slog.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

func (c *ConsoleNotifier) Send(_ context.Context, to, subject, body string) error {
	c.logger.Info("notification", "to", to, "subject", subject, "body_len", len(body))
	return nil
}

type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (s *SMTPNotifier) Send(_ context.Context, to, subject, body string) error {
	addr := s.cfg.Host + ":" + s.cfg.Port

	msg := &strings.Builder{}
	fmt.Fprintf(msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(msg, "To: %s\r\n", to)
	fmt.Fprintf(msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(msg, "MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
