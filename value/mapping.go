package value

import (
	"reflect"
)

// Mapping is an insertion ordered key/value association. Setting an existing
// key replaces its value in place. A nil *Mapping reads as empty.
type Mapping struct {
	keys   []any
	values []any
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{}
}

// Set associates value with key. Keys of a non-comparable type, such as
// tuples, are matched by deep equality.
func (m *Mapping) Set(key, value any) {
	if i := m.index(key); i >= 0 {
		m.values[i] = value
		return
	}

	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value stored under key.
func (m *Mapping) Get(key any) (any, bool) {
	i := m.index(key)
	if i < 0 {
		return nil, false
	}

	return m.values[i], true
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []any {
	if m == nil {
		return nil
	}

	return append([]any(nil), m.keys...)
}

// Values returns the values in key order.
func (m *Mapping) Values() []any {
	if m == nil {
		return nil
	}

	return append([]any(nil), m.values...)
}

func (m *Mapping) index(key any) int {
	if m == nil {
		return -1
	}

	for i, k := range m.keys {
		if sameKey(k, key) {
			return i
		}
	}

	return -1
}

// sameKey compares keys without panicking on non-comparable dynamic types.
func sameKey(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	if ta == nil || ta.Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}
