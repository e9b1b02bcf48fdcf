package finance

// Category labels transactions. Deleting one is allowed even while
// transactions still reference it; the dangling id resolves to nil on read.
type Category struct {
	Meta
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Categories returns all categories in insertion order.
func (b *Book) Categories() []Category { return b.categories.All() }

// CreateCategory saves a new category.
func (b *Book) CreateCategory(c Category) Category { return b.categories.Save(c) }

// DeleteCategory removes a category unconditionally.
func (b *Book) DeleteCategory(id string) { b.categories.Delete(id) }
