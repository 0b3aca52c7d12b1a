package services

import (
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/household_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/platform/config"
	"github.com/SscSPs/household_finance/internal/utils"
	"golang.org/x/text/language"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The returned FinanceService still has to be initialized before use.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier, logger *slog.Logger) (*portssvc.ServiceContainer, *FinanceService) {
	formatter := utils.NewFormatter(language.Make(cfg.Locale), cfg.CurrencySuffix)
	container := &portssvc.ServiceContainer{Formatter: formatter}

	finance := NewFinanceService(repos.DocumentRepo,
		WithLogger(logger),
		WithSaveTimeout(time.Duration(cfg.SaveTimeoutSeconds)*time.Second),
	)
	container.Document = finance
	container.Member = finance
	container.Asset = finance
	container.Liability = finance
	container.Income = finance

	container.Reporting = NewReportingService(finance, WithFormatter(formatter))
	container.Reminder = NewReminderService(container.Reporting, notifier,
		WithReminderWindow(cfg.ReminderWindowDays),
		WithReminderFormatter(formatter),
	)

	return container, finance
}
