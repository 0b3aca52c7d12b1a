package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strconv"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/jordan-wright/email"
)

// SMTPConfig holds what EmailNotifier needs to reach the mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// sendFunc delivers a prepared message. It matches (*email.Email).Send.
type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

// EmailNotifier sends reminders as plain-text e-mail.
type EmailNotifier struct {
	cfg    SMTPConfig
	logger *slog.Logger
	send   sendFunc
}

// NewEmailNotifier creates an e-mail notifier.
func NewEmailNotifier(cfg SMTPConfig, logger *slog.Logger) *EmailNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailNotifier{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

var _ portssvc.Notifier = (*EmailNotifier)(nil)

// Notify sends one message to every configured recipient.
func (n *EmailNotifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(n.cfg.To) == 0 {
		return fmt.Errorf("no reminder recipients configured")
	}

	e := email.NewEmail()
	e.From = n.cfg.From
	e.To = n.cfg.To
	e.Subject = subject
	e.Text = []byte(body)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	addr := n.cfg.Host + ":" + strconv.Itoa(n.cfg.Port)
	if err := n.send(e, addr, auth); err != nil {
		n.logger.Error("Failed to send reminder email", slog.String("error", err.Error()), slog.Any("to", n.cfg.To))
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Info("Reminder email sent", slog.Any("to", n.cfg.To), slog.String("subject", subject))
	return nil
}
