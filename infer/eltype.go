package infer

import (
	"fmt"
	"reflect"

	"eltype-inspector/descriptor"
)

// Inferrer computes element types. The zero value is not usable, create one
// with New. An Inferrer holds no mutable state and may be shared.
type Inferrer struct {
	namer ScalarNamer
}

// New creates an Inferrer configured by opts.
func New(opts ...Option) *Inferrer {
	in := &Inferrer{namer: DefaultNamer}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

var std = New()

// Eltype returns the element type of x using the default Inferrer.
func Eltype(x any) (descriptor.Descriptor, error) { return std.Eltype(x) }

// TypeOf returns the type of x as an element, using the default Inferrer.
func TypeOf(x any) (descriptor.Descriptor, error) { return std.TypeOf(x) }

// Union returns the join of the types of the members of x, using the default
// Inferrer.
func Union(x any) (descriptor.Descriptor, error) { return std.Union(x) }

// Eltype returns the element type of x.
//
// Declared types (descriptors, typeexpr.Expr, reflect.Type) yield their
// declared element type. One-shot sequences are drained first and are left
// exhausted. Mappings yield a MappingPair of independently joined keys and
// values, strings are atomic, and tuples, arrays, slices and collections
// yield the join of their members' types. Empty immutable containers give
// Bottom, empty mutable ones Top, and anything that is not a container Top.
func (in *Inferrer) Eltype(x any) (descriptor.Descriptor, error) {
	shape, x := classify(x)

	switch shape {
	case ShapeTypeExpr:
		return in.eltypeOfType(x)
	case ShapeBottom:
		return nil, ErrBottomTypeMisuse
	case ShapeIterator:
		return in.eltypeOfMembers(drain(x), false)
	case ShapeMapping:
		return in.eltypeOfMapping(x)
	case ShapeString:
		return in.scalar(x), nil
	case ShapeTuple, ShapeSequence:
		members, kind := membersOf(x)
		return in.eltypeOfMembers(members, kind.IsImmutable())
	default:
		return descriptor.Top{}, nil
	}
}

// TypeOf returns the type x is given when it appears as an element of a
// container: a Container for slices, collections and mappings, a tuple type
// for tuples and arrays, and a Scalar for everything else. Nested one-shot
// sequences are not drained; they are scalars.
func (in *Inferrer) TypeOf(x any) (descriptor.Descriptor, error) {
	shape, x := classify(x)
	return in.typeOfShaped(shape, x)
}

func (in *Inferrer) typeOfShaped(shape ShapeEnum, x any) (descriptor.Descriptor, error) {
	switch shape {
	case ShapeBottom:
		return nil, ErrBottomTypeMisuse
	case ShapeMapping:
		pair, err := in.eltypeOfMapping(x)
		if err != nil {
			return nil, err
		}

		return descriptor.Container{Kind: descriptor.KindMap, Elem: pair}, nil
	case ShapeTuple:
		members, _ := membersOf(x)
		return in.typeOfTuple(members)
	case ShapeSequence:
		members, kind := membersOf(x)

		elem, err := in.eltypeOfMembers(members, kind.IsImmutable())
		if err != nil {
			return nil, err
		}

		return descriptor.Container{Kind: kind, Elem: elem}, nil
	default:
		return in.scalar(x), nil
	}
}

// Union returns the join of the types of the members of x. Mappings
// contribute their keys and strings their characters. It fails with
// ErrInvalidArgument when x cannot be iterated.
func (in *Inferrer) Union(x any) (descriptor.Descriptor, error) {
	shape, x := classify(x)

	switch shape {
	case ShapeIterator:
		return in.eltypeOfMembers(drain(x), false)
	case ShapeTuple, ShapeSequence:
		members, kind := membersOf(x)
		return in.eltypeOfMembers(members, kind.IsImmutable())
	case ShapeMapping:
		keys, _ := pairsOf(x)
		return in.eltypeOfMembers(keys, false)
	case ShapeString:
		return in.eltypeOfMembers(charsOf(x), false)
	default:
		return nil, fmt.Errorf("%w: cannot iterate over %s", ErrInvalidArgument, in.scalar(x))
	}
}

func (in *Inferrer) scalar(x any) descriptor.Scalar {
	return descriptor.NewScalar(in.namer(reflect.TypeOf(x)))
}
