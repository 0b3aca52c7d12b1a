package domain

// Income is money a member receives. Only recurring incomes count towards
// monthly totals and the forecast.
type Income struct {
	ID          string `json:"id" validate:"required"`
	MemberID    string `json:"memberId" validate:"required"`
	Source      string `json:"source"`
	Amount      int64  `json:"amount"`
	IsRecurring bool   `json:"isRecurring"`
}
