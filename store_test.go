package finance

import "testing"

func TestStore_GetMissingKeepsDefault(t *testing.T) {
	s := NewStore(NewMemMedium())
	value := "default"
	if ok := s.Get("absent", &value); ok {
		t.Error("Get on an absent key reported ok")
	}
	if value != "default" {
		t.Errorf("default was overwritten: %q", value)
	}
}

func TestStore_CorruptValueDegradesToDefault(t *testing.T) {
	medium := NewMemMedium()
	medium["finance_cards"] = []byte("{not json")
	s := NewStore(medium)

	cards := []Card{{Name: "fallback"}}
	if ok := s.Get("finance_cards", &cards); ok {
		t.Error("Get on a corrupt value reported ok")
	}
	if len(cards) != 1 || cards[0].Name != "fallback" {
		t.Errorf("default was not preserved: %+v", cards)
	}
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	s := NewStore(NewMemMedium())
	s.Set("k", []string{"a", "b"})
	var got []string
	if ok := s.Get("k", &got); !ok {
		t.Fatal("Get after Set reported not ok")
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("round trip = %v", got)
	}
}

type failingMedium struct{ MemMedium }

func (failingMedium) Write(string, []byte) error {
	return errTest
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "disk full" }

func TestStore_WriteFailureIsSwallowed(t *testing.T) {
	s := NewStore(failingMedium{NewMemMedium()})
	// Must not panic or surface the error in any way.
	s.Set("k", 42)
	var v int
	if s.Get("k", &v) {
		t.Error("value was persisted despite write failure")
	}
}

func TestOpen_SeedsDefaultsOnce(t *testing.T) {
	medium := NewMemMedium()
	b := Open(medium)

	if got := len(b.Categories()); got != 6 {
		t.Errorf("seeded %d categories, want 6", got)
	}
	cards := b.Cards()
	if len(cards) != 1 || !cards[0].IsBudgeted {
		t.Fatalf("seeded cards = %+v, want one budgeted primary card", cards)
	}
	if !b.Savings().IsZero() {
		t.Errorf("seeded savings = %s, want 0", b.Savings())
	}
	if b.ExchangeRate().Rate.IntPart() != 1530 {
		t.Errorf("seeded rate = %s, want 1530", b.ExchangeRate().Rate)
	}

	// Reopening the same medium must not reset user data.
	b.CreateCategory(Category{Name: "سفر"})
	again := Open(medium)
	if got := len(again.Categories()); got != 7 {
		t.Errorf("reopen reset categories: got %d, want 7", got)
	}
}
