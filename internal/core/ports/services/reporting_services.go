package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// ReportingService defines operations for the dashboard and report views
type ReportingService interface {
	// Summary computes the household-wide totals.
	Summary(ctx context.Context) (*domain.FinancialSummary, error)

	// MemberSummaries computes the position of every member.
	MemberSummaries(ctx context.Context) ([]domain.MemberSummary, error)

	// MonthlyRepayments groups all installments by due month.
	MonthlyRepayments(ctx context.Context) ([]domain.MonthlyRepayment, error)

	// BalanceForecast projects income against installments for the current and the next 11 months.
	BalanceForecast(ctx context.Context) ([]domain.ForecastMonth, error)

	// UpcomingInstallments lists unpaid installments due within the given number of days,
	// overdue ones included.
	UpcomingInstallments(ctx context.Context, withinDays int) ([]domain.DueInstallment, error)
}

// ReminderService sends payment reminders for upcoming installments
type ReminderService interface {
	// SendReminders notifies about the installments that are due soon. It returns
	// how many installments were included.
	SendReminders(ctx context.Context) (int, error)
}

// Notifier delivers a reminder message.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}
