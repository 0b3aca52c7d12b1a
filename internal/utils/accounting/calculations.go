// Package accounting holds the pure calculations over a financial document:
// installment schedules, totals and the reports built from them.
package accounting

import (
	"sort"

	"github.com/SscSPs/household_finance/internal/core/domain"
)

// ForecastMonths is the number of months covered by BalanceForecast.
const ForecastMonths = 12

// TotalAssets sums the amounts of all assets.
func TotalAssets(doc domain.FinancialDocument) int64 {
	var total int64
	for _, a := range doc.Assets {
		total += a.Amount
	}
	return total
}

// OutstandingLiabilities sums the unpaid installments of every liability.
func OutstandingLiabilities(doc domain.FinancialDocument) int64 {
	var total int64
	for _, l := range doc.Liabilities {
		total += l.RemainingAmount()
	}
	return total
}

// PaidLiabilities sums the paid installments of every liability.
func PaidLiabilities(doc domain.FinancialDocument) int64 {
	var total int64
	for _, l := range doc.Liabilities {
		total += l.PaidAmount()
	}
	return total
}

// NetWorth is total assets minus outstanding liabilities.
func NetWorth(doc domain.FinancialDocument) int64 {
	return TotalAssets(doc) - OutstandingLiabilities(doc)
}

// MonthlyIncome sums the recurring incomes. One-off incomes are not counted.
func MonthlyIncome(doc domain.FinancialDocument) int64 {
	var total int64
	for _, i := range doc.Incomes {
		if i.IsRecurring {
			total += i.Amount
		}
	}
	return total
}

// AssetDistribution sums asset amounts per type, in the order each type first appears.
func AssetDistribution(doc domain.FinancialDocument) []domain.AssetTypeAmount {
	out := []domain.AssetTypeAmount{}
	index := map[domain.AssetType]int{}
	for _, a := range doc.Assets {
		i, ok := index[a.Type]
		if !ok {
			i = len(out)
			index[a.Type] = i
			out = append(out, domain.AssetTypeAmount{Type: a.Type})
		}
		out[i].Amount += a.Amount
	}
	return out
}

// SummarizeMember computes the financial position of one member.
func SummarizeMember(doc domain.FinancialDocument, member domain.Member) domain.MemberSummary {
	s := domain.MemberSummary{MemberID: member.ID, Name: member.Name}
	for _, a := range doc.Assets {
		if a.MemberID == member.ID {
			s.Assets += a.Amount
		}
	}
	for _, l := range doc.Liabilities {
		if l.MemberID == member.ID {
			s.Liabilities += l.RemainingAmount()
		}
	}
	for _, i := range doc.Incomes {
		if i.MemberID == member.ID && i.IsRecurring {
			s.MonthlyIncome += i.Amount
		}
	}
	s.Net = s.Assets - s.Liabilities
	return s
}

// MemberSummaries summarizes every member in document order.
func MemberSummaries(doc domain.FinancialDocument) []domain.MemberSummary {
	out := make([]domain.MemberSummary, 0, len(doc.Members))
	for _, m := range doc.Members {
		out = append(out, SummarizeMember(doc, m))
	}
	return out
}

// MemberDebts sums the recorded total amount of each member's liabilities.
// Every member gets an entry, in member order; members without liabilities show 0.
func MemberDebts(doc domain.FinancialDocument) []domain.MemberDebt {
	out := []domain.MemberDebt{}
	for _, m := range doc.Members {
		var total int64
		for _, l := range doc.Liabilities {
			if l.MemberID == m.ID {
				total += l.TotalAmount
			}
		}
		out = append(out, domain.MemberDebt{MemberID: m.ID, Name: m.Name, TotalAmount: total})
	}
	return out
}

// Summarize computes the household-wide dashboard totals.
func Summarize(doc domain.FinancialDocument) domain.FinancialSummary {
	return domain.FinancialSummary{
		TotalAssets:            TotalAssets(doc),
		OutstandingLiabilities: OutstandingLiabilities(doc),
		PaidLiabilities:        PaidLiabilities(doc),
		NetWorth:               NetWorth(doc),
		AssetDistribution:      AssetDistribution(doc),
		MemberDebts:            MemberDebts(doc),
	}
}

// MonthlyRepaymentBreakdown groups every installment, paid or not, by the
// calendar month of its due date. Months are returned in ascending order.
func MonthlyRepaymentBreakdown(doc domain.FinancialDocument) []domain.MonthlyRepayment {
	byMonth := map[string]*domain.MonthlyRepayment{}
	for _, l := range doc.Liabilities {
		memberName := doc.MemberName(l.MemberID)
		for _, ins := range l.Installments {
			key := ins.DueDate.MonthKey()
			m, ok := byMonth[key]
			if !ok {
				m = &domain.MonthlyRepayment{MonthKey: key, Details: []domain.RepaymentDetail{}}
				byMonth[key] = m
			}
			m.Total += ins.Amount
			m.Details = append(m.Details, domain.RepaymentDetail{
				LiabilityID: l.ID,
				Title:       l.Title,
				Amount:      ins.Amount,
				MemberName:  memberName,
				IsPaid:      ins.IsPaid,
			})
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.MonthlyRepayment, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byMonth[k])
	}
	return out
}

// BalanceForecast projects income against installment expenses for the month
// of today and the following months. Income is the flat recurring total for
// every month; expenses are all installments due in that month, paid or not.
// MonthLabel is left empty for the caller to localize.
func BalanceForecast(doc domain.FinancialDocument, today domain.Date) []domain.ForecastMonth {
	income := MonthlyIncome(doc)
	first := domain.NewDate(today.Year, today.Month, 1)

	out := make([]domain.ForecastMonth, 0, ForecastMonths)
	index := make(map[string]int, ForecastMonths)
	for i := 0; i < ForecastMonths; i++ {
		start := first.AddMonths(i)
		index[start.MonthKey()] = i
		out = append(out, domain.ForecastMonth{
			MonthKey:   start.MonthKey(),
			MonthStart: start,
			Income:     income,
		})
	}

	for _, l := range doc.Liabilities {
		for _, ins := range l.Installments {
			if i, ok := index[ins.DueDate.MonthKey()]; ok {
				out[i].Expenses += ins.Amount
			}
		}
	}
	for i := range out {
		out[i].Balance = out[i].Income - out[i].Expenses
	}
	return out
}

// LiabilityProgressOf reports how many installments of l are paid and how much is left.
func LiabilityProgressOf(l domain.Liability) domain.LiabilityProgress {
	return domain.LiabilityProgress{
		LiabilityID:     l.ID,
		PaidCount:       l.PaidCount(),
		TotalCount:      len(l.Installments),
		RemainingAmount: l.RemainingAmount(),
	}
}

// DueInstallments lists the unpaid installments due on or before until,
// ordered by due date. Installments due before today are flagged overdue.
func DueInstallments(doc domain.FinancialDocument, today, until domain.Date) []domain.DueInstallment {
	out := []domain.DueInstallment{}
	for _, l := range doc.Liabilities {
		memberName := doc.MemberName(l.MemberID)
		for _, ins := range l.Installments {
			if ins.IsPaid || ins.DueDate.After(until) {
				continue
			}
			out = append(out, domain.DueInstallment{
				LiabilityID:    l.ID,
				LiabilityTitle: l.Title,
				MemberName:     memberName,
				Installment:    ins,
				Overdue:        ins.DueDate.Before(today),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Installment.DueDate.Before(out[j].Installment.DueDate)
	})
	return out
}
