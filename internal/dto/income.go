package dto

import (
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/utils"
)

// CreateIncomeRequest defines the data needed to record an income.
type CreateIncomeRequest struct {
	MemberID    string `json:"memberId" binding:"required"`
	Source      string `json:"source" binding:"required,max=200"`
	Amount      int64  `json:"amount" binding:"min=0"`
	IsRecurring bool   `json:"isRecurring"`
}

// IncomeResponse defines the data returned for an income.
type IncomeResponse struct {
	ID              string `json:"id"`
	MemberID        string `json:"memberId"`
	MemberName      string `json:"memberName"`
	Source          string `json:"source"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	IsRecurring     bool   `json:"isRecurring"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(i domain.Income, memberName string, f *utils.Formatter) IncomeResponse {
	return IncomeResponse{
		ID:              i.ID,
		MemberID:        i.MemberID,
		MemberName:      memberName,
		Source:          i.Source,
		Amount:          i.Amount,
		AmountFormatted: f.FormatCurrency(i.Amount),
		IsRecurring:     i.IsRecurring,
	}
}

// ToListIncomeResponse converts the incomes of doc to IncomeResponse DTOs
func ToListIncomeResponse(doc domain.FinancialDocument, f *utils.Formatter) []IncomeResponse {
	res := make([]IncomeResponse, len(doc.Incomes))
	for i, in := range doc.Incomes {
		res[i] = ToIncomeResponse(in, doc.MemberName(in.MemberID), f)
	}
	return res
}
