package infer

import (
	"reflect"
	"strconv"

	"eltype-inspector/typeexpr"
)

// ScalarNamer names the Scalar descriptor given to a value of type rt.
// rt is nil for an untyped nil.
type ScalarNamer = typeexpr.Namer

// Option configures an Inferrer.
type Option func(*Inferrer)

// WithScalarNamer replaces the default scalar naming.
func WithScalarNamer(namer ScalarNamer) Option {
	if namer == nil {
		panic("scalar namer cannot be nil")
	}

	return func(in *Inferrer) {
		in.namer = namer
	}
}

// WithCustomName wraps namer so that rt is reported as name.
func WithCustomName(namer ScalarNamer, rt reflect.Type, name string) ScalarNamer {
	if namer == nil {
		panic("customized namer function cannot be nil")
	}

	return func(in reflect.Type) string {
		if in == rt {
			return name
		}

		return namer(in)
	}
}

// DefaultNamer uses the short Go spelling of the type, e.g. "store.Order".
func DefaultNamer(rt reflect.Type) string {
	if rt == nil {
		return "nil"
	}

	return rt.String()
}

// QualifiedNamer spells named types with their full package path, e.g.
// "eltype-inspector/store.Order".
func QualifiedNamer(rt reflect.Type) string {
	if rt == nil {
		return "nil"
	}

	if rt.Name() != "" {
		if rt.PkgPath() == "" {
			return rt.String()
		}

		return rt.PkgPath() + "." + rt.Name()
	}

	switch rt.Kind() {
	case reflect.Pointer:
		return "*" + QualifiedNamer(rt.Elem())
	case reflect.Slice:
		return "[]" + QualifiedNamer(rt.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(rt.Len()) + "]" + QualifiedNamer(rt.Elem())
	case reflect.Map:
		return "map[" + QualifiedNamer(rt.Key()) + "]" + QualifiedNamer(rt.Elem())
	default:
		return rt.String()
	}
}
