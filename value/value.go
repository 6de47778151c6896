package value

import (
	"eltype-inspector/descriptor"
)

// Collection is a general container whose members can be listed.
type Collection interface {
	Members() []any
	Kind() descriptor.ContainerEnum
}

// Pairs is a mapping-shaped container. Keys and Values return the same number
// of items in matching order.
type Pairs interface {
	Keys() []any
	Values() []any
}

// Iterator is a one-shot sequence. Once Next has returned false the sequence
// is exhausted.
type Iterator interface {
	Next() (any, bool)
}

// Tuple is a fixed-length, positionally ordered aggregate.
type Tuple []any

// Never marks a value claiming to inhabit the bottom type.
type Never struct{}

// SliceIterator is an Iterator over a fixed list of items.
type SliceIterator struct {
	items []any
	pos   int
}

// Iter returns a one-shot iterator over a copy of items.
func Iter(items ...any) *SliceIterator {
	return &SliceIterator{items: append([]any(nil), items...)}
}

func (it *SliceIterator) Next() (any, bool) {
	if it == nil || it.pos >= len(it.items) {
		return nil, false
	}

	item := it.items[it.pos]
	it.items[it.pos] = nil
	it.pos++

	return item, true
}

// Drain reads it until it is exhausted.
func Drain(it Iterator) []any {
	var out []any
	for {
		item, ok := it.Next()
		if !ok {
			return out
		}

		out = append(out, item)
	}
}
