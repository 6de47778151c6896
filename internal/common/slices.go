package common

import "errors"

var (
	// ErrEmptyCollection is returned by Only when there is no element.
	ErrEmptyCollection = errors.New("collection is empty; must contain exactly 1 element")
	// ErrTooManyElements is returned by Only when there is more than one element.
	ErrTooManyElements = errors.New("collection has multiple elements; must contain exactly 1 element")
)

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// Only returns the one and only element of s.
func Only[S ~[]E, E any](s S) (E, error) {
	var zero E

	switch len(s) {
	case 0:
		return zero, ErrEmptyCollection
	case 1:
		return s[0], nil
	default:
		return zero, ErrTooManyElements
	}
}
