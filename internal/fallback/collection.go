package fallback

// Collection is an ordered, newest-first list of records keyed by id.
// It is not safe for concurrent use; Store guards it.
type Collection[T any] struct {
	items []T
	id    func(T) string
}

// NewCollection creates a collection using id to key its items.
func NewCollection[T any](id func(T) string, items ...T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), items...), id: id}
}

// UpsertByID replaces the item with the same id in place, keeping every
// other item where it is. Unknown ids are prepended.
func (c *Collection[T]) UpsertByID(item T) {
	key := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == key {
			c.items[i] = item
			return
		}
	}
	c.items = append([]T{item}, c.items...)
}

// RemoveByID deletes the item with the given id and reports whether it existed.
func (c *Collection[T]) RemoveByID(id string) bool {
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the items in stored order.
func (c *Collection[T]) All() []T {
	return append([]T{}, c.items...)
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
