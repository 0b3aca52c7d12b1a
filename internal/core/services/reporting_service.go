package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/utils"
	"github.com/SscSPs/household_finance/internal/utils/accounting"
	"golang.org/x/text/language"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	documents portssvc.DocumentReaderSvc
	formatter *utils.Formatter
	now       func() time.Time
	location  *time.Location
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// WithFormatter sets the formatter used for month labels.
func WithFormatter(f *utils.Formatter) ReportingServiceOption {
	return func(s *reportingService) {
		s.formatter = f
	}
}

// WithLocation sets the time zone that decides what "today" is.
func WithLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		s.location = loc
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(documents portssvc.DocumentReaderSvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		documents: documents,
		formatter: utils.NewFormatter(language.Persian, ""),
		now:       time.Now,
		location:  time.Local,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) today() domain.Date {
	return domain.DateOf(s.now().In(s.location))
}

func (s *reportingService) document(ctx context.Context, report string) (domain.FinancialDocument, error) {
	doc, err := s.documents.GetDocument(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read document for report", slog.String("report", report))
		return domain.FinancialDocument{}, fmt.Errorf("failed to read document for %s: %w", report, err)
	}
	return doc, nil
}

// Summary computes the household-wide totals
func (s *reportingService) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	doc, err := s.document(ctx, "summary")
	if err != nil {
		return nil, err
	}
	summary := accounting.Summarize(doc)
	return &summary, nil
}

// MemberSummaries computes the position of every member
func (s *reportingService) MemberSummaries(ctx context.Context) ([]domain.MemberSummary, error) {
	doc, err := s.document(ctx, "member summaries")
	if err != nil {
		return nil, err
	}
	return accounting.MemberSummaries(doc), nil
}

// MonthlyRepayments groups all installments by due month
func (s *reportingService) MonthlyRepayments(ctx context.Context) ([]domain.MonthlyRepayment, error) {
	doc, err := s.document(ctx, "monthly repayments")
	if err != nil {
		return nil, err
	}
	return accounting.MonthlyRepaymentBreakdown(doc), nil
}

// BalanceForecast projects the balance of the current and the next 11 months
func (s *reportingService) BalanceForecast(ctx context.Context) ([]domain.ForecastMonth, error) {
	doc, err := s.document(ctx, "balance forecast")
	if err != nil {
		return nil, err
	}
	months := accounting.BalanceForecast(doc, s.today())
	for i := range months {
		months[i].MonthLabel = s.formatter.MonthLabel(months[i].MonthStart)
	}
	return months, nil
}

// UpcomingInstallments lists unpaid installments due within withinDays days, overdue ones included
func (s *reportingService) UpcomingInstallments(ctx context.Context, withinDays int) ([]domain.DueInstallment, error) {
	if withinDays < 0 {
		return nil, fmt.Errorf("%w: window must not be negative, got %d", apperrors.ErrValidation, withinDays)
	}
	doc, err := s.document(ctx, "upcoming installments")
	if err != nil {
		return nil, err
	}
	today := s.today()
	until := domain.DateOf(today.Time().AddDate(0, 0, withinDays))
	return accounting.DueInstallments(doc, today, until), nil
}
