package accounting

import (
	"testing"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportDocument() domain.FinancialDocument {
	return domain.FinancialDocument{
		Members: []domain.Member{
			{ID: "m1", Name: "Ali"},
			{ID: "m2", Name: "Sara"},
		},
		Assets: []domain.Asset{
			{ID: "a1", MemberID: "m1", Type: domain.AssetBankAccount, Title: "Checking", Amount: 1000},
			{ID: "a2", MemberID: "m2", Type: domain.AssetGoldCurrency, Title: "Coins", Amount: 500},
			{ID: "a3", MemberID: "m2", Type: domain.AssetBankAccount, Title: "Savings", Amount: 250},
		},
		Liabilities: []domain.Liability{
			{
				ID: "l1", MemberID: "m1", Title: "Car loan", TotalAmount: 300,
				RepaymentType: domain.RepaymentInstallment,
				StartDate:     domain.NewDate(2024, 1, 10),
				Installments: []domain.Installment{
					{ID: "i1", DueDate: domain.NewDate(2024, 1, 10), Amount: 100, IsPaid: true},
					{ID: "i2", DueDate: domain.NewDate(2024, 2, 10), Amount: 100},
					{ID: "i3", DueDate: domain.NewDate(2024, 3, 10), Amount: 100},
				},
			},
			{
				ID: "l2", MemberID: "gone", Title: "Old debt", TotalAmount: 50,
				RepaymentType: domain.RepaymentLumpSum,
				StartDate:     domain.NewDate(2024, 2, 1),
				Installments: []domain.Installment{
					{ID: "i4", DueDate: domain.NewDate(2024, 2, 1), Amount: 50},
				},
			},
		},
		Incomes: []domain.Income{
			{ID: "n1", MemberID: "m1", Source: "Salary", Amount: 400, IsRecurring: true},
			{ID: "n2", MemberID: "m2", Source: "Bonus", Amount: 999, IsRecurring: false},
			{ID: "n3", MemberID: "m2", Source: "Rent", Amount: 100, IsRecurring: true},
		},
	}
}

func TestTotals(t *testing.T) {
	doc := reportDocument()

	assert.Equal(t, int64(1750), TotalAssets(doc))
	assert.Equal(t, int64(250), OutstandingLiabilities(doc))
	assert.Equal(t, int64(100), PaidLiabilities(doc))
	assert.Equal(t, int64(1500), NetWorth(doc))
	assert.Equal(t, int64(500), MonthlyIncome(doc))
}

func TestTotals_EmptyDocument(t *testing.T) {
	doc := domain.NewFinancialDocument()

	s := Summarize(doc)
	assert.Zero(t, s.TotalAssets)
	assert.Zero(t, s.NetWorth)
	assert.Empty(t, s.AssetDistribution)
	assert.Empty(t, s.MemberDebts)
	assert.Empty(t, MonthlyRepaymentBreakdown(doc))
	assert.Empty(t, MemberSummaries(doc))
}

func TestAssetDistribution_FirstSeenOrder(t *testing.T) {
	got := AssetDistribution(reportDocument())
	assert.Equal(t, []domain.AssetTypeAmount{
		{Type: domain.AssetBankAccount, Amount: 1250},
		{Type: domain.AssetGoldCurrency, Amount: 500},
	}, got)
}

func TestMemberSummaries(t *testing.T) {
	got := MemberSummaries(reportDocument())
	assert.Equal(t, []domain.MemberSummary{
		{MemberID: "m1", Name: "Ali", Assets: 1000, Liabilities: 200, MonthlyIncome: 400, Net: 800},
		{MemberID: "m2", Name: "Sara", Assets: 750, Liabilities: 0, MonthlyIncome: 100, Net: 750},
	}, got)
}

func TestMemberDebts(t *testing.T) {
	got := MemberDebts(reportDocument())
	assert.Equal(t, []domain.MemberDebt{
		{MemberID: "m1", Name: "Ali", TotalAmount: 300},
		{MemberID: "m2", Name: "Sara", TotalAmount: 0},
	}, got)
}

func TestMonthlyRepaymentBreakdown(t *testing.T) {
	got := MonthlyRepaymentBreakdown(reportDocument())
	require.Len(t, got, 3)

	assert.Equal(t, "2024-01", got[0].MonthKey)
	assert.Equal(t, int64(100), got[0].Total)
	assert.Equal(t, []domain.RepaymentDetail{
		{LiabilityID: "l1", Title: "Car loan", Amount: 100, MemberName: "Ali", IsPaid: true},
	}, got[0].Details)

	assert.Equal(t, "2024-02", got[1].MonthKey)
	assert.Equal(t, int64(150), got[1].Total)
	assert.Equal(t, []domain.RepaymentDetail{
		{LiabilityID: "l1", Title: "Car loan", Amount: 100, MemberName: "Ali"},
		{LiabilityID: "l2", Title: "Old debt", Amount: 50, MemberName: domain.UnknownMemberName},
	}, got[1].Details)

	assert.Equal(t, "2024-03", got[2].MonthKey)
	assert.Equal(t, int64(100), got[2].Total)
}

func TestBalanceForecast_FlatIncome(t *testing.T) {
	doc := domain.NewFinancialDocument().
		AddMember(domain.Member{ID: "m1", Name: "Ali"}).
		AddIncome(domain.Income{ID: "n1", MemberID: "m1", Source: "Salary", Amount: 5000000, IsRecurring: true})

	got := BalanceForecast(doc, domain.NewDate(2024, 11, 20))
	require.Len(t, got, ForecastMonths)
	for _, m := range got {
		assert.Equal(t, int64(5000000), m.Income)
		assert.Equal(t, int64(0), m.Expenses)
		assert.Equal(t, int64(5000000), m.Balance)
	}
	assert.Equal(t, "2024-11", got[0].MonthKey)
	assert.Equal(t, domain.NewDate(2024, 11, 1), got[0].MonthStart)
	assert.Equal(t, "2025-01", got[2].MonthKey)
	assert.Equal(t, "2025-10", got[11].MonthKey)
}

func TestBalanceForecast_Expenses(t *testing.T) {
	// today on the 31st must not skip the following short month
	got := BalanceForecast(reportDocument(), domain.NewDate(2024, 1, 31))
	require.Len(t, got, ForecastMonths)

	assert.Equal(t, "2024-01", got[0].MonthKey)
	assert.Equal(t, int64(100), got[0].Expenses)
	assert.Equal(t, "2024-02", got[1].MonthKey)
	assert.Equal(t, int64(150), got[1].Expenses)
	assert.Equal(t, int64(350), got[1].Balance)
	assert.Equal(t, int64(100), got[2].Expenses)
	assert.Equal(t, int64(0), got[3].Expenses)
	assert.Equal(t, int64(500), got[3].Balance)
}

func TestLiabilityProgressOf(t *testing.T) {
	doc := reportDocument()
	assert.Equal(t, domain.LiabilityProgress{
		LiabilityID: "l1", PaidCount: 1, TotalCount: 3, RemainingAmount: 200,
	}, LiabilityProgressOf(doc.Liabilities[0]))
}

func TestDueInstallments(t *testing.T) {
	doc := reportDocument()

	got := DueInstallments(doc, domain.NewDate(2024, 2, 5), domain.NewDate(2024, 2, 12))
	require.Len(t, got, 2)

	assert.Equal(t, "i4", got[0].Installment.ID)
	assert.True(t, got[0].Overdue)
	assert.Equal(t, domain.UnknownMemberName, got[0].MemberName)

	assert.Equal(t, "i2", got[1].Installment.ID)
	assert.False(t, got[1].Overdue)
	assert.Equal(t, "Car loan", got[1].LiabilityTitle)
	assert.Equal(t, "Ali", got[1].MemberName)
}
