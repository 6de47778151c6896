package value

import (
	"github.com/hashicorp/go-set/v3"

	"eltype-inspector/descriptor"
)

// Set is a mutable, insertion ordered set. Members must be comparable.
// A nil *Set reads as empty.
type Set struct {
	order []any
	seen  *set.Set[any]
}

// NewSet returns a set holding items, duplicates dropped.
func NewSet(items ...any) *Set {
	s := &Set{seen: set.New[any](len(items))}
	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts item and reports whether it was not already present.
func (s *Set) Add(item any) bool {
	if s.seen == nil {
		s.seen = set.New[any](0)
	}

	if !s.seen.Insert(item) {
		return false
	}

	s.order = append(s.order, item)

	return true
}

// Contains reports whether item is a member.
func (s *Set) Contains(item any) bool {
	return s != nil && s.seen != nil && s.seen.Contains(item)
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Members returns the members in insertion order.
func (s *Set) Members() []any {
	if s == nil {
		return nil
	}

	return append([]any(nil), s.order...)
}

func (*Set) Kind() descriptor.ContainerEnum { return descriptor.KindSet }

// Freeze returns an immutable copy of s.
func (s *Set) Freeze() *FrozenSet {
	if s == nil {
		return &FrozenSet{}
	}

	return &FrozenSet{members: NewSet(s.order...)}
}

// FrozenSet is an immutable, insertion ordered set. An empty FrozenSet can
// never gain members.
type FrozenSet struct {
	members *Set
}

// NewFrozenSet returns an immutable set holding items, duplicates dropped.
func NewFrozenSet(items ...any) *FrozenSet {
	return &FrozenSet{members: NewSet(items...)}
}

// Contains reports whether item is a member.
func (f *FrozenSet) Contains(item any) bool {
	return f != nil && f.members.Contains(item)
}

// Len returns the number of members.
func (f *FrozenSet) Len() int {
	if f == nil {
		return 0
	}

	return f.members.Len()
}

// Members returns the members in insertion order.
func (f *FrozenSet) Members() []any {
	if f == nil {
		return nil
	}

	return f.members.Members()
}

func (*FrozenSet) Kind() descriptor.ContainerEnum { return descriptor.KindFrozenSet }
