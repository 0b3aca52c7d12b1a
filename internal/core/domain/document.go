package domain

// FinancialDocument is the aggregate root holding every entity of the household.
// It is persisted as a whole. Mutation methods never modify the receiver: each
// returns a new document, so a document handed out to readers stays stable.
type FinancialDocument struct {
	Members     []Member    `json:"members" validate:"dive"`
	Assets      []Asset     `json:"assets" validate:"dive"`
	Liabilities []Liability `json:"liabilities" validate:"dive"`
	Incomes     []Income    `json:"incomes" validate:"dive"`
}

// NewFinancialDocument returns an empty document.
func NewFinancialDocument() FinancialDocument {
	return FinancialDocument{
		Members:     []Member{},
		Assets:      []Asset{},
		Liabilities: []Liability{},
		Incomes:     []Income{},
	}
}

// Clone returns a deep copy of d. Nil collections come back empty.
func (d FinancialDocument) Clone() FinancialDocument {
	out := FinancialDocument{
		Members:     append(make([]Member, 0, len(d.Members)), d.Members...),
		Assets:      append(make([]Asset, 0, len(d.Assets)), d.Assets...),
		Liabilities: make([]Liability, 0, len(d.Liabilities)),
		Incomes:     append(make([]Income, 0, len(d.Incomes)), d.Incomes...),
	}
	for _, l := range d.Liabilities {
		out.Liabilities = append(out.Liabilities, l.clone())
	}
	return out
}

// FindMember looks a member up by id.
func (d FinancialDocument) FindMember(id string) (Member, bool) {
	for _, m := range d.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// MemberName returns the name of the member with the given id, or
// UnknownMemberName when there is none.
func (d FinancialDocument) MemberName(id string) string {
	if m, ok := d.FindMember(id); ok {
		return m.Name
	}
	return UnknownMemberName
}

// FindAsset looks an asset up by id.
func (d FinancialDocument) FindAsset(id string) (Asset, bool) {
	for _, a := range d.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// FindLiability looks a liability up by id.
func (d FinancialDocument) FindLiability(id string) (Liability, bool) {
	for _, l := range d.Liabilities {
		if l.ID == id {
			return l.clone(), true
		}
	}
	return Liability{}, false
}

// FindIncome looks an income up by id.
func (d FinancialDocument) FindIncome(id string) (Income, bool) {
	for _, i := range d.Incomes {
		if i.ID == id {
			return i, true
		}
	}
	return Income{}, false
}

// HasID reports whether any member, asset, liability, installment or income uses id.
func (d FinancialDocument) HasID(id string) bool {
	for _, m := range d.Members {
		if m.ID == id {
			return true
		}
	}
	for _, a := range d.Assets {
		if a.ID == id {
			return true
		}
	}
	for _, l := range d.Liabilities {
		if l.ID == id {
			return true
		}
		for _, ins := range l.Installments {
			if ins.ID == id {
				return true
			}
		}
	}
	for _, i := range d.Incomes {
		if i.ID == id {
			return true
		}
	}
	return false
}

// AddMember appends m.
func (d FinancialDocument) AddMember(m Member) FinancialDocument {
	next := d.Clone()
	next.Members = append(next.Members, m)
	return next
}

// DeleteMember removes the member and every asset, liability and income that refers to it.
func (d FinancialDocument) DeleteMember(id string) FinancialDocument {
	next := d.Clone()
	next.Members = filter(next.Members, func(m Member) bool { return m.ID != id })
	next.Assets = filter(next.Assets, func(a Asset) bool { return a.MemberID != id })
	next.Liabilities = filter(next.Liabilities, func(l Liability) bool { return l.MemberID != id })
	next.Incomes = filter(next.Incomes, func(i Income) bool { return i.MemberID != id })
	return next
}

// AddAsset appends a.
func (d FinancialDocument) AddAsset(a Asset) FinancialDocument {
	next := d.Clone()
	next.Assets = append(next.Assets, a)
	return next
}

// UpdateAssetAmount sets the amount of an asset. The bool is false when no asset has that id.
func (d FinancialDocument) UpdateAssetAmount(id string, amount int64) (FinancialDocument, bool) {
	next := d.Clone()
	for i := range next.Assets {
		if next.Assets[i].ID == id {
			next.Assets[i].Amount = amount
			return next, true
		}
	}
	return d, false
}

// DeleteAsset removes an asset by id.
func (d FinancialDocument) DeleteAsset(id string) FinancialDocument {
	next := d.Clone()
	next.Assets = filter(next.Assets, func(a Asset) bool { return a.ID != id })
	return next
}

// AddLiability appends l together with its installments.
func (d FinancialDocument) AddLiability(l Liability) FinancialDocument {
	next := d.Clone()
	next.Liabilities = append(next.Liabilities, l.clone())
	return next
}

// DeleteLiability removes a liability and, with it, its installments.
func (d FinancialDocument) DeleteLiability(id string) FinancialDocument {
	next := d.Clone()
	next.Liabilities = filter(next.Liabilities, func(l Liability) bool { return l.ID != id })
	return next
}

// AddIncome appends i.
func (d FinancialDocument) AddIncome(i Income) FinancialDocument {
	next := d.Clone()
	next.Incomes = append(next.Incomes, i)
	return next
}

// DeleteIncome removes an income by id.
func (d FinancialDocument) DeleteIncome(id string) FinancialDocument {
	next := d.Clone()
	next.Incomes = filter(next.Incomes, func(i Income) bool { return i.ID != id })
	return next
}

// ToggleInstallmentPaid flips the paid flag of one installment. TotalAmount is left alone.
// The bool is false when the liability or installment does not exist.
func (d FinancialDocument) ToggleInstallmentPaid(liabilityID, installmentID string) (FinancialDocument, bool) {
	return d.updateInstallment(liabilityID, installmentID, func(l *Liability, ins *Installment) {
		ins.IsPaid = !ins.IsPaid
	})
}

// UpdateInstallmentAmount sets one installment's amount and recomputes the parent
// liability's TotalAmount as the sum of its installments. This is the only mutation
// that moves TotalAmount away from the amount the liability was created with.
func (d FinancialDocument) UpdateInstallmentAmount(liabilityID, installmentID string, amount int64) (FinancialDocument, bool) {
	return d.updateInstallment(liabilityID, installmentID, func(l *Liability, ins *Installment) {
		ins.Amount = amount
		l.TotalAmount = l.SumInstallments()
	})
}

func (d FinancialDocument) updateInstallment(liabilityID, installmentID string, apply func(*Liability, *Installment)) (FinancialDocument, bool) {
	next := d.Clone()
	for li := range next.Liabilities {
		l := &next.Liabilities[li]
		if l.ID != liabilityID {
			continue
		}
		for ii := range l.Installments {
			if l.Installments[ii].ID == installmentID {
				apply(l, &l.Installments[ii])
				return next, true
			}
		}
		return d, false
	}
	return d, false
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
