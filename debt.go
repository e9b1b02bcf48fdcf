package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DebtType records who owes whom.
type DebtType string

const (
	OwedByMe DebtType = "OWED_BY_ME"
	OwedToMe DebtType = "OWED_TO_ME"
)

// DebtStatus is the settlement state of a debt. It is driven externally via
// UpdateDebtStatus, not flipped automatically by payments.
type DebtStatus string

const (
	Pending DebtStatus = "PENDING"
	Paid    DebtStatus = "PAID"
)

// Debt is money owed, in either direction. Amount is the fixed total at
// creation; what remains is Amount minus the sum of payments. StoredAmount
// is cash set aside for the debt but not yet applied as a payment.
type Debt struct {
	Meta
	PersonName   string          `json:"personName"`
	Amount       decimal.Decimal `json:"amount"`
	Type         DebtType        `json:"type"`
	Status       DebtStatus      `json:"status"`
	StoredAmount decimal.Decimal `json:"storedAmount"`
	Notes        string          `json:"notes"`
	IsArchived   bool            `json:"isArchived"`
}

// DebtPayment is one repayment against a debt. Payments are immutable and
// never deleted once created.
type DebtPayment struct {
	Meta
	DebtID string          `json:"debtId"`
	Amount decimal.Decimal `json:"amount"`
}

// DebtView is a debt joined to its payments in creation order.
type DebtView struct {
	Debt
	Payments []DebtPayment `json:"payments"`
}

// DebtPatch is a partial debt update; nil fields are left untouched.
type DebtPatch struct {
	PersonName *string
	Notes      *string
	Status     *DebtStatus
}

// Debts returns every debt joined to its ordered payments, most recent
// debt first.
func (b *Book) Debts() []DebtView {
	payments := b.payments.All()
	byDebt := make(map[string][]DebtPayment)
	for _, p := range payments {
		byDebt[p.DebtID] = append(byDebt[p.DebtID], p)
	}

	debts := b.debts.All()
	views := make([]DebtView, 0, len(debts))
	for _, d := range debts {
		views = append(views, DebtView{Debt: d, Payments: byDebt[d.ID]})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.After(views[j].Date)
	})
	return views
}

// CreateDebt saves a new debt: pending, nothing stashed, not archived.
// The total owed is fixed from here on.
func (b *Book) CreateDebt(d Debt) Debt {
	d.Status = Pending
	d.StoredAmount = decimal.Zero
	d.IsArchived = false
	return b.debts.Save(d)
}

// UpdateDebt applies the patch to the debt, returning nil when absent.
func (b *Book) UpdateDebt(id string, patch DebtPatch) *Debt {
	return b.debts.Update(id, func(d *Debt) {
		if patch.PersonName != nil {
			d.PersonName = *patch.PersonName
		}
		if patch.Notes != nil {
			d.Notes = *patch.Notes
		}
		if patch.Status != nil {
			d.Status = *patch.Status
		}
	})
}

// UpdateDebtStatus sets the settlement state of the debt.
func (b *Book) UpdateDebtStatus(id string, status DebtStatus) *Debt {
	return b.debts.Update(id, func(d *Debt) { d.Status = status })
}

// ArchiveDebt toggles the archived flag. Toggling twice restores the debt.
func (b *Book) ArchiveDebt(id string) *Debt {
	return b.debts.Update(id, func(d *Debt) { d.IsArchived = !d.IsArchived })
}

// StoreAmount adjusts the debt's stashed-cash counter with the given verb.
// The counter is independent of formal payments and is not clamped.
func (b *Book) StoreAmount(id string, amount decimal.Decimal, op AdjustOp) *Debt {
	return b.debts.Update(id, func(d *Debt) {
		d.StoredAmount = op.apply(d.StoredAmount, amount)
	})
}

// Payments returns the payments recorded against one debt, in creation order.
func (b *Book) Payments(debtID string) []DebtPayment {
	var out []DebtPayment
	for _, p := range b.payments.All() {
		if p.DebtID == debtID {
			out = append(out, p)
		}
	}
	return out
}

// AddPayment appends an immutable payment. It does not flip the debt
// status; consumers compare the payment sum to the total when they need to.
func (b *Book) AddPayment(p DebtPayment) DebtPayment { return b.payments.Save(p) }
