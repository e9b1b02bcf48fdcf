package finance

import (
	"time"

	"github.com/google/uuid"
)

// Meta carries the identity fields the repository assigns when a record is
// first saved. Every collection entity embeds it.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Date      time.Time `json:"date"`
}

func (m *Meta) meta() *Meta { return m }

// record constrains a collection entity to a pointer type exposing its Meta.
type record[T any] interface {
	*T
	meta() *Meta
}

// collection provides the generic persistence primitives over one named
// store key. The medium has no query capability, so a collection is always
// read and written in full; filtering, joining and sorting happen in the
// domain layer after a full read.
type collection[T any, P record[T]] struct {
	store *Store
	key   string
}

func newCollection[T any, P record[T]](store *Store, key string) collection[T, P] {
	return collection[T, P]{store: store, key: key}
}

// All returns the whole collection in insertion order.
func (c collection[T, P]) All() []T {
	var items []T
	c.store.Get(c.key, &items)
	return items
}

// Find returns a copy of the record with the given id, or nil.
func (c collection[T, P]) Find(id string) *T {
	for _, item := range c.All() {
		if P(&item).meta().ID == id {
			out := item
			return &out
		}
	}
	return nil
}

// Save assigns a fresh id and creation timestamp, defaults the record date
// to the creation timestamp when the caller left it unset, appends the
// record and persists the collection. It returns the stored record.
func (c collection[T, P]) Save(item T) T {
	now := time.Now()
	m := P(&item).meta()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	if m.Date.IsZero() {
		m.Date = now
	}
	items := append(c.All(), item)
	c.store.Set(c.key, items)
	return item
}

// Update applies mutate to the record with the given id, persists the
// collection, and returns a copy of the updated record. A missing id is a
// silent no-op returning nil.
func (c collection[T, P]) Update(id string, mutate func(*T)) *T {
	items := c.All()
	for i := range items {
		if P(&items[i]).meta().ID != id {
			continue
		}
		mutate(&items[i])
		c.store.Set(c.key, items)
		out := items[i]
		return &out
	}
	return nil
}

// Delete removes the record with the given id. An absent id is a no-op.
func (c collection[T, P]) Delete(id string) {
	items := c.All()
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if P(&item).meta().ID != id {
			kept = append(kept, item)
		}
	}
	c.store.Set(c.key, kept)
}
