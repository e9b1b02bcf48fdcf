package finance

import "github.com/shopspring/decimal"

// Card is a named money container with a running balance. Its balance is
// only ever mutated through transactions and top-ups.
type Card struct {
	Meta
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	IsBudgeted bool            `json:"isBudgeted"`
	Color      string          `json:"color"`
}

// CardPatch is a partial card update; nil fields are left untouched.
type CardPatch struct {
	Name       *string
	Balance    *decimal.Decimal
	IsBudgeted *bool
	Color      *string
}

// Cards returns all cards, unfiltered, in insertion order.
func (b *Book) Cards() []Card { return b.cards.All() }

// CreateCard saves a new card. Identity fields set by the caller are
// overwritten by the repository.
func (b *Book) CreateCard(c Card) Card { return b.cards.Save(c) }

// UpdateCard applies the patch to the card, returning nil when absent.
func (b *Book) UpdateCard(id string, patch CardPatch) *Card {
	return b.cards.Update(id, func(c *Card) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Balance != nil {
			c.Balance = *patch.Balance
		}
		if patch.IsBudgeted != nil {
			c.IsBudgeted = *patch.IsBudgeted
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
	})
}

// DeleteCard removes a card. At least one card must always exist: deleting
// the last one returns false and leaves the collection unchanged. This is a
// distinguished result, not an error; callers check it explicitly.
func (b *Book) DeleteCard(id string) bool {
	if len(b.cards.All()) <= 1 {
		return false
	}
	b.cards.Delete(id)
	return true
}

// TopUpCard adds the amount to the card balance. There is no upper bound.
func (b *Book) TopUpCard(id string, amount decimal.Decimal) *Card {
	return b.cards.Update(id, func(c *Card) {
		c.Balance = c.Balance.Add(amount)
	})
}
