package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/utils"
	"golang.org/x/text/language"
)

const defaultReminderWindowDays = 7

// reminderService implements the ReminderService interface
type reminderService struct {
	BaseService
	reporting  portssvc.ReportingService
	notifier   portssvc.Notifier
	formatter  *utils.Formatter
	windowDays int
}

// ReminderServiceOption is a functional option for configuring the reminder service
type ReminderServiceOption func(*reminderService)

// WithReminderWindow sets how many days ahead installments are included.
func WithReminderWindow(days int) ReminderServiceOption {
	return func(s *reminderService) {
		s.windowDays = days
	}
}

// WithReminderFormatter sets the formatter used for amounts and dates in the message.
func WithReminderFormatter(f *utils.Formatter) ReminderServiceOption {
	return func(s *reminderService) {
		s.formatter = f
	}
}

// NewReminderService creates a new reminder service with the provided options
func NewReminderService(reporting portssvc.ReportingService, notifier portssvc.Notifier, options ...ReminderServiceOption) portssvc.ReminderService {
	svc := &reminderService{
		reporting:  reporting,
		notifier:   notifier,
		formatter:  utils.NewFormatter(language.Persian, "تومان"),
		windowDays: defaultReminderWindowDays,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReminderService = (*reminderService)(nil)

// SendReminders notifies about the unpaid installments due within the window
func (s *reminderService) SendReminders(ctx context.Context) (int, error) {
	due, err := s.reporting.UpcomingInstallments(ctx, s.windowDays)
	if err != nil {
		s.LogError(ctx, err, "Failed to collect upcoming installments")
		return 0, fmt.Errorf("failed to collect upcoming installments: %w", err)
	}
	if len(due) == 0 {
		s.LogDebug(ctx, "No installments due, skipping reminder", slog.Int("window_days", s.windowDays))
		return 0, nil
	}

	var body strings.Builder
	for _, d := range due {
		status := "due"
		if d.Overdue {
			status = "OVERDUE"
		}
		fmt.Fprintf(&body, "%s | %s | %s | %s | %s\n",
			s.formatter.FormatDate(d.Installment.DueDate),
			d.LiabilityTitle,
			d.MemberName,
			s.formatter.FormatCurrency(d.Installment.Amount),
			status,
		)
	}

	subject := fmt.Sprintf("%d installment(s) due within %d days", len(due), s.windowDays)
	if err := s.notifier.Notify(ctx, subject, body.String()); err != nil {
		s.LogError(ctx, err, "Failed to send installment reminder", slog.Int("count", len(due)))
		return 0, fmt.Errorf("failed to send installment reminder: %w", err)
	}

	s.LogInfo(ctx, "Installment reminder sent", slog.Int("count", len(due)))
	return len(due), nil
}
