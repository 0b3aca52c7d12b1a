package domain

// RepaymentType defines how a liability is paid back.
type RepaymentType string

const (
	RepaymentInstallment RepaymentType = "installment"
	RepaymentLumpSum     RepaymentType = "lump_sum"
)

// IsValid reports whether r is a known repayment type.
func (r RepaymentType) IsValid() bool {
	return r == RepaymentInstallment || r == RepaymentLumpSum
}

// Installment is one scheduled payment of a liability.
type Installment struct {
	ID      string `json:"id" validate:"required"`
	DueDate Date   `json:"dueDate"`
	Amount  int64  `json:"amount"`
	IsPaid  bool   `json:"isPaid"`
}

// Liability is a debt owed by a member, repaid through its installments.
// TotalAmount is a cached sum: it is set at creation and recomputed only when an
// installment amount is edited.
type Liability struct {
	ID            string        `json:"id" validate:"required"`
	MemberID      string        `json:"memberId" validate:"required"`
	Title         string        `json:"title"`
	TotalAmount   int64         `json:"totalAmount"`
	RepaymentType RepaymentType `json:"repaymentType" validate:"oneof=installment lump_sum"`
	Installments  []Installment `json:"installments" validate:"dive"`
	StartDate     Date          `json:"startDate"`
	Description   string        `json:"description"`
}

// SumInstallments returns the sum of all installment amounts.
func (l Liability) SumInstallments() int64 {
	var sum int64
	for _, ins := range l.Installments {
		sum += ins.Amount
	}
	return sum
}

// RemainingAmount returns the sum of the unpaid installments.
func (l Liability) RemainingAmount() int64 {
	var sum int64
	for _, ins := range l.Installments {
		if !ins.IsPaid {
			sum += ins.Amount
		}
	}
	return sum
}

// PaidAmount returns the sum of the paid installments.
func (l Liability) PaidAmount() int64 {
	return l.SumInstallments() - l.RemainingAmount()
}

// PaidCount returns how many installments are marked paid.
func (l Liability) PaidCount() int {
	count := 0
	for _, ins := range l.Installments {
		if ins.IsPaid {
			count++
		}
	}
	return count
}

func (l Liability) clone() Liability {
	l.Installments = append([]Installment(nil), l.Installments...)
	if l.Installments == nil {
		l.Installments = []Installment{}
	}
	return l
}
