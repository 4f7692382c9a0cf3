package memory

import (
	"crypto/rand"
	"encoding/hex"
)

// table is an insertion-ordered mapping from identifier to record.
// Replacing an existing id keeps its original position, matching the
// iteration semantics listings rely on.
type table[T any] struct {
	items map[string]*T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]*T)}
}

func (t *table[T]) get(id string) (*T, bool) {
	v, ok := t.items[id]
	return v, ok
}

func (t *table[T]) put(id string, v *T) {
	if _, exists := t.items[id]; !exists {
		t.order = append(t.order, id)
	}
	t.items[id] = v
}

// all returns the records in insertion order.
func (t *table[T]) all() []*T {
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.items[id])
	}
	return out
}

func (t *table[T]) len() int { return len(t.items) }

// newID generates a 32-character hex identifier, unique within a table
// for any practical population (128 bits of randomness).
func newID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
