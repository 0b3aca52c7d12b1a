package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// LiabilityReaderSvc defines read operations for liabilities
type LiabilityReaderSvc interface {
	// ListLiabilities retrieves all liabilities with their installments.
	ListLiabilities(ctx context.Context) ([]domain.Liability, error)

	// GetLiability retrieves one liability by id.
	GetLiability(ctx context.Context, liabilityID string) (*domain.Liability, error)
}

// LiabilityWriterSvc defines write operations for liabilities and their installments
type LiabilityWriterSvc interface {
	// AddLiability records a liability and generates its installment schedule.
	AddLiability(ctx context.Context, req dto.CreateLiabilityRequest) (*domain.Liability, error)

	// DeleteLiability removes a liability together with its installments.
	DeleteLiability(ctx context.Context, liabilityID string) error

	// ToggleInstallmentPaid flips the paid flag of one installment.
	ToggleInstallmentPaid(ctx context.Context, liabilityID, installmentID string) (*domain.Liability, error)

	// UpdateInstallmentAmount corrects the amount of one installment and
	// recomputes the liability's total amount.
	UpdateInstallmentAmount(ctx context.Context, liabilityID, installmentID string, amount int64) (*domain.Liability, error)
}

// LiabilitySvcFacade combines all liability-related service interfaces
type LiabilitySvcFacade interface {
	LiabilityReaderSvc
	LiabilityWriterSvc
}
