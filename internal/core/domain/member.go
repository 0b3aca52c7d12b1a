package domain

// Member is a person in the household. Assets, liabilities and incomes refer to
// their owner through MemberID.
type Member struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}
