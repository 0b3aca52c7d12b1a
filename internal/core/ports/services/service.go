package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/utils"
)

// FinanceSvcFacade is the domain store: every read and mutation of the financial document.
type FinanceSvcFacade interface {
	DocumentReaderSvc
	MemberSvcFacade
	AssetSvcFacade
	LiabilitySvcFacade
	IncomeSvcFacade
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Document  DocumentReaderSvc
	Member    MemberSvcFacade
	Asset     AssetSvcFacade
	Liability LiabilitySvcFacade
	Income    IncomeSvcFacade
	Reporting ReportingService
	Reminder  ReminderService

	// Formatter renders amounts and dates in the configured locale.
	Formatter *utils.Formatter
}

// Lifecycle is implemented by services that load state at startup and must
// drain pending work before shutdown.
type Lifecycle interface {
	Init(ctx context.Context) error
	Flush(ctx context.Context) error
	Close(ctx context.Context) error
}
