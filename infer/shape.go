package infer

import (
	"reflect"

	"eltype-inspector/descriptor"
	"eltype-inspector/typeexpr"
	"eltype-inspector/value"
)

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum classifies an input once, before any inference happens.
type ShapeEnum int

const (
	ShapeUnknown  ShapeEnum = iota
	ShapeTypeExpr           // descriptor.Descriptor, typeexpr.Expr or reflect.Type
	ShapeBottom             // value.Never
	ShapeIterator           // value.Iterator or a channel that can be received from
	ShapeMapping            // value.Pairs or a Go map
	ShapeTuple              // value.Tuple or a Go array
	ShapeString             // any string kind
	ShapeSequence           // Go slice or value.Collection
	ShapeScalar             // everything else, nil included

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// IsContainer reports whether the shape supports membership.
func (s ShapeEnum) IsContainer() bool {
	switch s {
	default:
		return false
	case ShapeMapping, ShapeTuple, ShapeString, ShapeSequence:
		return true
	}
}

// Classify returns the shape of x. Non-nil pointers are followed first.
func Classify(x any) ShapeEnum {
	shape, _ := classify(x)
	return shape
}

// classify returns the shape of x together with x after pointers were followed.
func classify(x any) (ShapeEnum, any) {
	x = resolve(x)

	switch x.(type) {
	case nil:
		return ShapeScalar, x
	case descriptor.Descriptor, typeexpr.Expr, reflect.Type:
		return ShapeTypeExpr, x
	case value.Never:
		return ShapeBottom, x
	case value.Iterator:
		return ShapeIterator, x
	case value.Pairs:
		return ShapeMapping, x
	case value.Tuple:
		return ShapeTuple, x
	case value.Collection:
		return ShapeSequence, x
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			return ShapeIterator, x
		}

		return ShapeScalar, x
	case reflect.Map:
		return ShapeMapping, x
	case reflect.Array:
		return ShapeTuple, x
	case reflect.String:
		return ShapeString, x
	case reflect.Slice:
		return ShapeSequence, x
	default:
		return ShapeScalar, x
	}
}

// resolve follows non-nil pointers until x is a known shape or not a pointer.
func resolve(x any) any {
	for {
		switch x.(type) {
		case nil, descriptor.Descriptor, typeexpr.Expr, reflect.Type,
			value.Never, value.Iterator, value.Pairs, value.Tuple, value.Collection:
			return x
		}

		rv := reflect.ValueOf(x)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return x
		}

		x = rv.Elem().Interface()
	}
}
