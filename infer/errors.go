package infer

import (
	"errors"

	"eltype-inspector/internal/common"
)

var (
	// ErrInvalidArgument is returned when a value cannot be iterated where a
	// union needs its members, or a declared type is malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBottomTypeMisuse is returned when asked to type a value.Never marker.
	ErrBottomTypeMisuse = errors.New("the bottom type necessarily contains no elements")
	// ErrEmptyCollection is returned when a declared type needs exactly one
	// argument and has none.
	ErrEmptyCollection = common.ErrEmptyCollection
	// ErrTooManyElements is returned when a declared type needs exactly one
	// argument and has several.
	ErrTooManyElements = common.ErrTooManyElements
)
