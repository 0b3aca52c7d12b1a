package domain

// AssetTypeAmount is the summed amount of all assets of one type.
type AssetTypeAmount struct {
	Type   AssetType `json:"type"`
	Amount int64     `json:"amount"`
}

// MemberSummary is the financial position of a single member.
type MemberSummary struct {
	MemberID      string `json:"memberId"`
	Name          string `json:"name"`
	Assets        int64  `json:"assets"`
	Liabilities   int64  `json:"liabilities"`   // unpaid installments only
	MonthlyIncome int64  `json:"monthlyIncome"` // recurring incomes only
	Net           int64  `json:"net"`
}

// MemberDebt is the sum of a member's liabilities at their recorded total amount.
type MemberDebt struct {
	MemberID    string `json:"memberId"`
	Name        string `json:"name"`
	TotalAmount int64  `json:"totalAmount"`
}

// FinancialSummary holds the household-wide totals shown on the dashboard.
type FinancialSummary struct {
	TotalAssets            int64             `json:"totalAssets"`
	OutstandingLiabilities int64             `json:"outstandingLiabilities"`
	PaidLiabilities        int64             `json:"paidLiabilities"`
	NetWorth               int64             `json:"netWorth"`
	AssetDistribution      []AssetTypeAmount `json:"assetDistribution"`
	MemberDebts            []MemberDebt      `json:"memberDebts"`
}

// RepaymentDetail is one installment as listed in the monthly repayment breakdown.
type RepaymentDetail struct {
	LiabilityID string `json:"liabilityId"`
	Title       string `json:"title"`
	Amount      int64  `json:"amount"`
	MemberName  string `json:"memberName"`
	IsPaid      bool   `json:"isPaid"`
}

// MonthlyRepayment groups all installments falling due in one calendar month.
type MonthlyRepayment struct {
	MonthKey string            `json:"monthKey"` // YYYY-MM
	Total    int64             `json:"total"`
	Details  []RepaymentDetail `json:"details"`
}

// ForecastMonth is one month of the balance forecast.
type ForecastMonth struct {
	MonthKey   string `json:"monthKey"`
	MonthStart Date   `json:"monthStart"`
	MonthLabel string `json:"monthLabel"`
	Income     int64  `json:"income"`
	Expenses   int64  `json:"expenses"`
	Balance    int64  `json:"balance"`
}

// LiabilityProgress tells how far the repayment of a liability has come.
type LiabilityProgress struct {
	LiabilityID     string `json:"liabilityId"`
	PaidCount       int    `json:"paidCount"`
	TotalCount      int    `json:"totalCount"`
	RemainingAmount int64  `json:"remainingAmount"`
}

// DueInstallment is an unpaid installment selected for a payment reminder.
type DueInstallment struct {
	LiabilityID    string      `json:"liabilityId"`
	LiabilityTitle string      `json:"liabilityTitle"`
	MemberName     string      `json:"memberName"`
	Installment    Installment `json:"installment"`
	Overdue        bool        `json:"overdue"`
}
