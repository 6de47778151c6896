package typeexpr

import (
	"strings"

	"eltype-inspector/descriptor"
)

// Ellipsis marks a variable-arity tuple when it is the second of exactly two
// tuple arguments, as in tuple[int, ...].
var Ellipsis = descriptor.Scalar{Name: "..."}

// IsEllipsis reports whether d is the Ellipsis marker.
func IsEllipsis(d descriptor.Descriptor) bool {
	s, ok := d.(descriptor.Scalar)
	return ok && s == Ellipsis
}

// Expr is a declared type: an origin with optional type arguments.
type Expr struct {
	Name string                   // Origin name, e.g. "[]", "map", "Records", "int"
	Kind descriptor.ContainerEnum // Zero when the origin is not a container
	Args []descriptor.Descriptor  // Declared type arguments, may contain Ellipsis
}

// IsContainer reports whether the origin is a container kind.
func (e Expr) IsContainer() bool {
	return e.Kind.IsContainer()
}

// String renders the expression as Name[Arg, ...].
func (e Expr) String() string {
	name := e.Name
	if name == "" {
		name = e.Kind.Keyword()
	}

	if len(e.Args) == 0 {
		return name
	}

	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}

	return name + "[" + strings.Join(parts, ", ") + "]"
}

// Of returns a non-container type expression.
func Of(name string) Expr {
	return Expr{Name: name}
}

// Generic returns an unparametrized container type, such as a bare "list".
func Generic(kind descriptor.ContainerEnum) Expr {
	return Expr{Name: kind.Keyword(), Kind: kind}
}

// Container returns a container of kind parametrized with args.
func Container(kind descriptor.ContainerEnum, args ...descriptor.Descriptor) Expr {
	return Expr{Name: kind.Keyword(), Kind: kind, Args: args}
}

// Slice returns []elem.
func Slice(elem descriptor.Descriptor) Expr {
	return Container(descriptor.KindSlice, elem)
}

// Map returns map[key]value.
func Map(key, value descriptor.Descriptor) Expr {
	return Container(descriptor.KindMap, key, value)
}

// Tuple returns tuple[args...].
func Tuple(args ...descriptor.Descriptor) Expr {
	return Container(descriptor.KindTuple, args...)
}

// VariadicTuple returns tuple[elem, ...].
func VariadicTuple(elem descriptor.Descriptor) Expr {
	return Container(descriptor.KindTuple, elem, Ellipsis)
}
