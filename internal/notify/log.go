package notify

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
)

// LogNotifier writes reminders to the log. It is used when no SMTP server is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier writing to logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

var _ portssvc.Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) Notify(ctx context.Context, subject, body string) error {
	n.logger.InfoContext(ctx, "Installment reminder", slog.String("subject", subject), slog.String("body", body))
	return nil
}
