package memory

import "sync"

// collection is a mutex-guarded map of records keyed by id. Insertion order
// is tracked separately so repeated lists return records in a stable order
// within one process run.
type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range c.order {
		if keep(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	return v, ok
}

// put inserts or replaces the record for id. New ids go to the end of the
// insertion order; replacements keep their position.
func (c *collection[T]) put(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

// update applies fn to the record for id while holding the write lock, so
// the read, the decision, and the write happen as one step. The stored record
// is only replaced when fn returns nil. Reports whether id existed.
func (c *collection[T]) update(id string, fn func(T) (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	next, err := fn(v)
	if err != nil {
		return v, true, err
	}
	c.items[id] = next
	return next, true, nil
}
