// Package store provides the in-memory keyed collections backing the
// memory repositories. Individual operations are safe for concurrent use;
// atomicity across multiple operations is the caller's responsibility.
package store

import "sync"

type Table[T any] struct {
	mu   sync.RWMutex
	rows map[string]T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[string]T)}
}

func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// Find returns the first row matching pred. Iteration order is unspecified,
// so pred should identify at most one row.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T]) Filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []T
	for _, row := range t.rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *Table[T]) Insert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = row
}

// InsertUnique inserts row under id unless any existing row matches conflict,
// holding the table lock across check and insert. Reports whether the row was
// inserted.
func (t *Table[T]) InsertUnique(id string, row T, conflict func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.rows {
		if conflict(existing) {
			return false
		}
	}
	t.rows[id] = row
	return true
}

// Update replaces the row with id by mutate's result. Returns false when the
// row does not exist.
func (t *Table[T]) Update(id string, mutate func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	row = mutate(row)
	t.rows[id] = row
	return row, true
}

func (t *Table[T]) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
