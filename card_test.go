package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDeleteCard_LastCardGuard(t *testing.T) {
	b := newTestBook() // one seeded card

	if b.DeleteCard("1") {
		t.Error("deleting the last card must return false")
	}
	if got := len(b.Cards()); got != 1 {
		t.Fatalf("collection changed: %d cards, want 1", got)
	}

	second := b.CreateCard(Card{Name: "مدخرات", IsBudgeted: false})
	if !b.DeleteCard(second.ID) {
		t.Error("deleting one of two cards must return true")
	}
	cards := b.Cards()
	if len(cards) != 1 || cards[0].ID != "1" {
		t.Errorf("wrong card removed: %+v", cards)
	}
}

func TestCreateCard(t *testing.T) {
	b := newTestBook()
	card := b.CreateCard(Card{Name: "راتب", Balance: decimal.NewFromInt(250000), IsBudgeted: true})
	if card.ID == "" || card.ID == "1" {
		t.Errorf("CreateCard id = %q, want a fresh id", card.ID)
	}
	if !card.Balance.Equal(decimal.NewFromInt(250000)) {
		t.Errorf("balance = %s, want 250000", card.Balance)
	}
}

func TestUpdateCard_Patch(t *testing.T) {
	b := newTestBook()
	name := "محفظة جديدة"
	budgeted := false

	updated := b.UpdateCard("1", CardPatch{Name: &name, IsBudgeted: &budgeted})
	if updated == nil {
		t.Fatal("UpdateCard returned nil for an existing card")
	}
	if updated.Name != name || updated.IsBudgeted {
		t.Errorf("patch not applied: %+v", updated)
	}
	// Unpatched fields untouched.
	if updated.Color != "#3b82f6" {
		t.Errorf("color changed unexpectedly: %q", updated.Color)
	}

	if b.UpdateCard("missing", CardPatch{Name: &name}) != nil {
		t.Error("UpdateCard on a missing id should be nil")
	}
}

func TestTopUpCard(t *testing.T) {
	b := newTestBook()
	updated := b.TopUpCard("1", decimal.NewFromInt(75000))
	if updated == nil {
		t.Fatal("TopUpCard returned nil")
	}
	if !updated.Balance.Equal(decimal.NewFromInt(75000)) {
		t.Errorf("balance after top-up = %s, want 75000", updated.Balance)
	}
	b.TopUpCard("1", decimal.NewFromInt(25000))
	if got := b.Cards()[0].Balance; !got.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("balance after second top-up = %s, want 100000", got)
	}
}
