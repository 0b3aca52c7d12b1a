package services

import (
	"context"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/dto"
)

// IncomeReaderSvc defines read operations for incomes
type IncomeReaderSvc interface {
	// ListIncomes retrieves all incomes in insertion order.
	ListIncomes(ctx context.Context) ([]domain.Income, error)
}

// IncomeWriterSvc defines write operations for incomes
type IncomeWriterSvc interface {
	// AddIncome records a new income of an existing member.
	AddIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Income, error)

	// DeleteIncome removes an income.
	DeleteIncome(ctx context.Context, incomeID string) error
}

// IncomeSvcFacade combines all income-related service interfaces
type IncomeSvcFacade interface {
	IncomeReaderSvc
	IncomeWriterSvc
}
