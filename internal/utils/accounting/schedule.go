package accounting

import (
	"fmt"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/utils"
	"github.com/shopspring/decimal"
)

// GenerateSchedule builds the installments of a new liability.
// A lump sum produces a single installment of totalAmount due on start. An
// installment plan produces count installments one month apart starting at
// start; each is floor(totalAmount/count) except the last, which absorbs the
// remainder so the amounts sum to totalAmount exactly.
func GenerateSchedule(totalAmount int64, start domain.Date, repaymentType domain.RepaymentType, count int, newID utils.IDGenerator) ([]domain.Installment, error) {
	if totalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive, got %d", apperrors.ErrValidation, totalAmount)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", apperrors.ErrValidation)
	}

	switch repaymentType {
	case domain.RepaymentLumpSum:
		return []domain.Installment{{
			ID:      newID(),
			DueDate: start,
			Amount:  totalAmount,
		}}, nil
	case domain.RepaymentInstallment:
	default:
		return nil, fmt.Errorf("%w: unknown repayment type %q", apperrors.ErrValidation, repaymentType)
	}

	if count <= 0 {
		return nil, fmt.Errorf("%w: installment count must be positive, got %d", apperrors.ErrValidation, count)
	}

	base, _ := decimal.NewFromInt(totalAmount).QuoRem(decimal.NewFromInt(int64(count)), 0)
	baseAmount := base.IntPart()
	last := totalAmount - baseAmount*int64(count-1)

	installments := make([]domain.Installment, 0, count)
	for i := 0; i < count; i++ {
		amount := baseAmount
		if i == count-1 {
			amount = last
		}
		installments = append(installments, domain.Installment{
			ID:      newID(),
			DueDate: start.AddMonths(i),
			Amount:  amount,
		})
	}
	return installments, nil
}
