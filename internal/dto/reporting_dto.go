package dto

import (
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/utils"
)

// AssetTypeAmountResponse is one slice of the asset distribution.
type AssetTypeAmountResponse struct {
	Type            domain.AssetType `json:"type"`
	Label           string           `json:"label"`
	Amount          int64            `json:"amount"`
	AmountFormatted string           `json:"amountFormatted"`
}

// MemberDebtResponse is the recorded debt of one member.
type MemberDebtResponse struct {
	MemberID        string `json:"memberId"`
	Name            string `json:"name"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
}

// SummaryResponse represents the dashboard summary response
type SummaryResponse struct {
	TotalAssets                     int64                     `json:"totalAssets"`
	TotalAssetsFormatted            string                    `json:"totalAssetsFormatted"`
	OutstandingLiabilities          int64                     `json:"outstandingLiabilities"`
	OutstandingLiabilitiesFormatted string                    `json:"outstandingLiabilitiesFormatted"`
	PaidLiabilities                 int64                     `json:"paidLiabilities"`
	PaidLiabilitiesFormatted        string                    `json:"paidLiabilitiesFormatted"`
	NetWorth                        int64                     `json:"netWorth"`
	NetWorthFormatted               string                    `json:"netWorthFormatted"`
	AssetDistribution               []AssetTypeAmountResponse `json:"assetDistribution"`
	MemberDebts                     []MemberDebtResponse      `json:"memberDebts"`
}

// MemberSummaryResponse represents the financial position of one member
type MemberSummaryResponse struct {
	domain.MemberSummary
	AssetsFormatted        string `json:"assetsFormatted"`
	LiabilitiesFormatted   string `json:"liabilitiesFormatted"`
	MonthlyIncomeFormatted string `json:"monthlyIncomeFormatted"`
	NetFormatted           string `json:"netFormatted"`
}

// MonthlyRepaymentResponse represents the installments due in one month
type MonthlyRepaymentResponse struct {
	MonthKey       string                   `json:"monthKey"`
	MonthLabel     string                   `json:"monthLabel"`
	Total          int64                    `json:"total"`
	TotalFormatted string                   `json:"totalFormatted"`
	Details        []domain.RepaymentDetail `json:"details"`
}

// ForecastMonthResponse represents one month of the balance forecast
type ForecastMonthResponse struct {
	domain.ForecastMonth
	BalanceFormatted string `json:"balanceFormatted"`
}

// DueInstallmentResponse represents an installment that needs paying soon
type DueInstallmentResponse struct {
	domain.DueInstallment
	DueDateLocal    string `json:"dueDateLocal"`
	AmountFormatted string `json:"amountFormatted"`
}

// ToSummaryResponse converts a domain.FinancialSummary to SummaryResponse DTO
func ToSummaryResponse(s domain.FinancialSummary, f *utils.Formatter) SummaryResponse {
	dist := make([]AssetTypeAmountResponse, len(s.AssetDistribution))
	for i, d := range s.AssetDistribution {
		dist[i] = AssetTypeAmountResponse{
			Type:            d.Type,
			Label:           d.Type.Label(),
			Amount:          d.Amount,
			AmountFormatted: f.FormatCurrency(d.Amount),
		}
	}
	debts := make([]MemberDebtResponse, len(s.MemberDebts))
	for i, d := range s.MemberDebts {
		debts[i] = MemberDebtResponse{
			MemberID:        d.MemberID,
			Name:            d.Name,
			Amount:          d.TotalAmount,
			AmountFormatted: f.FormatCurrency(d.TotalAmount),
		}
	}
	return SummaryResponse{
		TotalAssets:                     s.TotalAssets,
		TotalAssetsFormatted:            f.FormatCurrency(s.TotalAssets),
		OutstandingLiabilities:          s.OutstandingLiabilities,
		OutstandingLiabilitiesFormatted: f.FormatCurrency(s.OutstandingLiabilities),
		PaidLiabilities:                 s.PaidLiabilities,
		PaidLiabilitiesFormatted:        f.FormatCurrency(s.PaidLiabilities),
		NetWorth:                        s.NetWorth,
		NetWorthFormatted:               f.FormatCurrency(s.NetWorth),
		AssetDistribution:               dist,
		MemberDebts:                     debts,
	}
}

// ToListMemberSummaryResponse converts member summaries to MemberSummaryResponse DTOs
func ToListMemberSummaryResponse(summaries []domain.MemberSummary, f *utils.Formatter) []MemberSummaryResponse {
	res := make([]MemberSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = MemberSummaryResponse{
			MemberSummary:          s,
			AssetsFormatted:        f.FormatCurrency(s.Assets),
			LiabilitiesFormatted:   f.FormatCurrency(s.Liabilities),
			MonthlyIncomeFormatted: f.FormatCurrency(s.MonthlyIncome),
			NetFormatted:           f.FormatCurrency(s.Net),
		}
	}
	return res
}

// ToListMonthlyRepaymentResponse converts the repayment breakdown to MonthlyRepaymentResponse DTOs
func ToListMonthlyRepaymentResponse(months []domain.MonthlyRepayment, f *utils.Formatter) []MonthlyRepaymentResponse {
	res := make([]MonthlyRepaymentResponse, len(months))
	for i, m := range months {
		label := ""
		if d, err := domain.ParseDate(m.MonthKey + "-01"); err == nil {
			label = f.MonthLabel(d)
		}
		res[i] = MonthlyRepaymentResponse{
			MonthKey:       m.MonthKey,
			MonthLabel:     label,
			Total:          m.Total,
			TotalFormatted: f.FormatCurrency(m.Total),
			Details:        m.Details,
		}
	}
	return res
}

// ToListForecastMonthResponse converts the forecast to ForecastMonthResponse DTOs
func ToListForecastMonthResponse(months []domain.ForecastMonth, f *utils.Formatter) []ForecastMonthResponse {
	res := make([]ForecastMonthResponse, len(months))
	for i, m := range months {
		res[i] = ForecastMonthResponse{
			ForecastMonth:    m,
			BalanceFormatted: f.FormatCurrency(m.Balance),
		}
	}
	return res
}

// ToListDueInstallmentResponse converts due installments to DueInstallmentResponse DTOs
func ToListDueInstallmentResponse(due []domain.DueInstallment, f *utils.Formatter) []DueInstallmentResponse {
	res := make([]DueInstallmentResponse, len(due))
	for i, d := range due {
		res[i] = DueInstallmentResponse{
			DueInstallment:  d,
			DueDateLocal:    f.FormatDate(d.Installment.DueDate),
			AmountFormatted: f.FormatCurrency(d.Installment.Amount),
		}
	}
	return res
}
