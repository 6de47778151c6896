package infer

import (
	"fmt"
	"reflect"
	"slices"

	"eltype-inspector/descriptor"
	"eltype-inspector/internal/common"
	"eltype-inspector/typeexpr"
)

func (in *Inferrer) eltypeOfType(x any) (descriptor.Descriptor, error) {
	switch xt := x.(type) {
	case typeexpr.Expr:
		return EltypeOfExpr(xt)
	case reflect.Type:
		return EltypeOfExpr(typeexpr.FromReflect(xt, in.namer))
	case descriptor.Descriptor:
		return EltypeOfExpr(typeexpr.FromDescriptor(xt))
	default:
		return nil, fmt.Errorf("%w: %T is not a type expression", ErrInvalidArgument, x)
	}
}

// EltypeOfExpr returns the declared element type of e.
//
// Types without arguments and types that are not containers give Top.
// Mappings give the (key, value) pair, tuples give their single argument, the
// element of tuple[T, ...], or a FixedTuple holding all arguments in order.
// Any other container must declare exactly one argument.
func EltypeOfExpr(e typeexpr.Expr) (descriptor.Descriptor, error) {
	if !e.IsContainer() || len(e.Args) == 0 {
		return descriptor.Top{}, nil
	}

	switch e.Kind {
	case descriptor.KindMap:
		if len(e.Args) != 2 {
			return nil, fmt.Errorf("%w: %s must declare a key and a value type", ErrInvalidArgument, e)
		}

		return descriptor.Pair(e.Args[0], e.Args[1]), nil
	case descriptor.KindTuple:
		if len(e.Args) == 2 && typeexpr.IsEllipsis(e.Args[1]) {
			return e.Args[0], nil
		}

		if slices.ContainsFunc(e.Args, typeexpr.IsEllipsis) {
			return nil, fmt.Errorf("%w: %s may only use ... as its second of two arguments", ErrInvalidArgument, e)
		}

		if common.IsSingle(e.Args) {
			return e.Args[0], nil
		}

		return descriptor.Tuple(e.Args...), nil
	}

	arg, err := common.Only(e.Args)
	if err != nil {
		return nil, fmt.Errorf("element type of %s: %w", e, err)
	}

	return arg, nil
}
