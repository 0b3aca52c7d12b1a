package dto

import (
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/utils"
	"github.com/SscSPs/household_finance/internal/utils/accounting"
)

// DefaultInstallmentCount is used when a liability is created without an installment count.
const DefaultInstallmentCount = 12

// CreateLiabilityRequest defines the data needed to record a liability.
// The installment schedule is generated from TotalAmount, StartDate and InstallmentCount.
type CreateLiabilityRequest struct {
	MemberID         string               `json:"memberId" binding:"required"`
	Title            string               `json:"title" binding:"required,max=200"`
	TotalAmount      int64                `json:"totalAmount" binding:"required,gt=0"`
	RepaymentType    domain.RepaymentType `json:"repaymentType" binding:"required,oneof=installment lump_sum"`
	InstallmentCount int                  `json:"installmentCount" binding:"omitempty,min=1,max=600"` // Optional, defaults to 12
	StartDate        string               `json:"startDate" binding:"required,datetime=2006-01-02"`
	Description      string               `json:"description"` // Optional
}

// Count returns the requested installment count or the default.
func (r CreateLiabilityRequest) Count() int {
	if r.InstallmentCount <= 0 {
		return DefaultInstallmentCount
	}
	return r.InstallmentCount
}

// UpdateInstallmentAmountRequest corrects the amount of one installment.
// Either Amount or AmountText must be given; AmountText accepts digit-grouped
// input such as "1,500,000" or "۱٬۵۰۰٬۰۰۰".
type UpdateInstallmentAmountRequest struct {
	Amount     *int64 `json:"amount" binding:"omitempty,min=0"`
	AmountText string `json:"amountText"`
}

// Value resolves the requested amount. Unparsable text counts as zero.
func (r UpdateInstallmentAmountRequest) Value() (int64, bool) {
	if r.Amount != nil {
		return *r.Amount, true
	}
	if r.AmountText != "" {
		return utils.ParseGrouped(r.AmountText), true
	}
	return 0, false
}

// InstallmentResponse defines the data returned for an installment.
type InstallmentResponse struct {
	ID              string      `json:"id"`
	DueDate         domain.Date `json:"dueDate"`
	DueDateLocal    string      `json:"dueDateLocal"`
	Amount          int64       `json:"amount"`
	AmountFormatted string      `json:"amountFormatted"`
	AmountGrouped   string      `json:"amountGrouped"`
	IsPaid          bool        `json:"isPaid"`
}

// LiabilityResponse defines the data returned for a liability.
type LiabilityResponse struct {
	ID                   string                   `json:"id"`
	MemberID             string                   `json:"memberId"`
	MemberName           string                   `json:"memberName"`
	Title                string                   `json:"title"`
	TotalAmount          int64                    `json:"totalAmount"`
	TotalAmountFormatted string                   `json:"totalAmountFormatted"`
	RepaymentType        domain.RepaymentType     `json:"repaymentType"`
	StartDate            domain.Date              `json:"startDate"`
	StartDateLocal       string                   `json:"startDateLocal"`
	Description          string                   `json:"description"`
	Progress             domain.LiabilityProgress `json:"progress"`
	Installments         []InstallmentResponse    `json:"installments"`
}

// ToInstallmentResponse converts a domain.Installment to InstallmentResponse DTO
func ToInstallmentResponse(ins domain.Installment, f *utils.Formatter) InstallmentResponse {
	return InstallmentResponse{
		ID:              ins.ID,
		DueDate:         ins.DueDate,
		DueDateLocal:    f.FormatDate(ins.DueDate),
		Amount:          ins.Amount,
		AmountFormatted: f.FormatCurrency(ins.Amount),
		AmountGrouped:   utils.GroupDigits(ins.Amount),
		IsPaid:          ins.IsPaid,
	}
}

// ToLiabilityResponse converts a domain.Liability to LiabilityResponse DTO
func ToLiabilityResponse(l domain.Liability, memberName string, f *utils.Formatter) LiabilityResponse {
	installments := make([]InstallmentResponse, len(l.Installments))
	for i, ins := range l.Installments {
		installments[i] = ToInstallmentResponse(ins, f)
	}
	return LiabilityResponse{
		ID:                   l.ID,
		MemberID:             l.MemberID,
		MemberName:           memberName,
		Title:                l.Title,
		TotalAmount:          l.TotalAmount,
		TotalAmountFormatted: f.FormatCurrency(l.TotalAmount),
		RepaymentType:        l.RepaymentType,
		StartDate:            l.StartDate,
		StartDateLocal:       f.FormatDate(l.StartDate),
		Description:          l.Description,
		Progress:             accounting.LiabilityProgressOf(l),
		Installments:         installments,
	}
}

// ToListLiabilityResponse converts the liabilities of doc to LiabilityResponse DTOs
func ToListLiabilityResponse(doc domain.FinancialDocument, f *utils.Formatter) []LiabilityResponse {
	res := make([]LiabilityResponse, len(doc.Liabilities))
	for i, l := range doc.Liabilities {
		res[i] = ToLiabilityResponse(l, doc.MemberName(l.MemberID), f)
	}
	return res
}
