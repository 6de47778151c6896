package descriptor

import (
	"strings"
)

// Descriptor is a type shape the inference engine can express.
// The set of implementations is closed: Scalar, Top, Bottom, Union, Container,
// MappingPair, FixedTuple, VariableTuple and EmptyTuple.
type Descriptor interface {
	// String renders the descriptor in a Go-flavoured notation.
	String() string
	// Hash is a structural hash; equal descriptors hash equally and union
	// member order does not affect it.
	Hash() uint64

	descriptor()
}

// Scalar is an atomic, non-decomposable type such as int or string.
type Scalar struct {
	Name string
}

// Top is the universal supertype: the element type is unknown.
type Top struct{}

// Bottom is the uninhabited type: there can be no element at all.
type Bottom struct{}

// Union is a join of two or more distinct descriptors.
// Members are flattened, deduplicated and kept in first-seen order.
// Build unions with Join, never by hand.
type Union struct {
	Members []Descriptor
}

// Container keeps the kind of the container the element type was taken from.
// Mappings nested inside other values are a Container of KindMap holding a
// MappingPair.
type Container struct {
	Kind ContainerEnum
	Elem Descriptor
}

// MappingPair is the induced (key union, value union) pair of a mapping.
type MappingPair struct {
	Key   Descriptor
	Value Descriptor
}

// FixedTuple is a tuple with a known arity and a type per position.
type FixedTuple struct {
	Elems []Descriptor
}

// VariableTuple is a tuple of unknown arity sharing one element type.
type VariableTuple struct {
	Elem Descriptor
}

// EmptyTuple is the nominal type of a tuple with exactly zero elements.
type EmptyTuple struct{}

func (Scalar) descriptor()        {}
func (Top) descriptor()           {}
func (Bottom) descriptor()        {}
func (Union) descriptor()         {}
func (Container) descriptor()     {}
func (MappingPair) descriptor()   {}
func (FixedTuple) descriptor()    {}
func (VariableTuple) descriptor() {}
func (EmptyTuple) descriptor()    {}

func (s Scalar) String() string { return s.Name }
func (Top) String() string      { return "any" }
func (Bottom) String() string   { return "never" }

func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}

	return strings.Join(parts, " | ")
}

func (c Container) String() string {
	var sb strings.Builder

	switch c.Kind {
	case KindSlice:
		sb.WriteString("[]")
		sb.WriteString(grouped(c.Elem))
	case KindChan:
		sb.WriteString("chan ")
		sb.WriteString(grouped(c.Elem))
	case KindMap:
		if pair, ok := c.Elem.(MappingPair); ok {
			sb.WriteString("map[")
			sb.WriteString(pair.Key.String())
			sb.WriteString("]")
			sb.WriteString(grouped(pair.Value))
			break
		}

		sb.WriteString("map[")
		sb.WriteString(c.Elem.String())
		sb.WriteString("]")
	default:
		sb.WriteString(c.Kind.Keyword())
		sb.WriteString("[")
		sb.WriteString(c.Elem.String())
		sb.WriteString("]")
	}

	return sb.String()
}

func (p MappingPair) String() string {
	return "(" + p.Key.String() + ", " + p.Value.String() + ")"
}

func (t FixedTuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}

	return "tuple[" + strings.Join(parts, ", ") + "]"
}

func (t VariableTuple) String() string { return "tuple[" + t.Elem.String() + ", ...]" }
func (EmptyTuple) String() string      { return "tuple[]" }

// grouped parenthesizes unions that follow a prefix such as "[]" or "chan ".
func grouped(d Descriptor) string {
	if _, ok := d.(Union); ok {
		return "(" + d.String() + ")"
	}

	return d.String()
}

// NewScalar returns the scalar descriptor named name.
func NewScalar(name string) Scalar {
	return Scalar{Name: name}
}

// SliceOf returns a slice container of elem.
func SliceOf(elem Descriptor) Container {
	return Container{Kind: KindSlice, Elem: elem}
}

// SetOf returns a mutable set container of elem.
func SetOf(elem Descriptor) Container {
	return Container{Kind: KindSet, Elem: elem}
}

// FrozenSetOf returns an immutable set container of elem.
func FrozenSetOf(elem Descriptor) Container {
	return Container{Kind: KindFrozenSet, Elem: elem}
}

// MapOf returns a map container whose element is the (key, value) pair.
func MapOf(key, value Descriptor) Container {
	return Container{Kind: KindMap, Elem: MappingPair{Key: key, Value: value}}
}

// Pair returns the mapping pair (key, value).
func Pair(key, value Descriptor) MappingPair {
	return MappingPair{Key: key, Value: value}
}

// Tuple returns the fixed-arity tuple of elems, or EmptyTuple when there are none.
func Tuple(elems ...Descriptor) Descriptor {
	if len(elems) == 0 {
		return EmptyTuple{}
	}

	return FixedTuple{Elems: append([]Descriptor(nil), elems...)}
}

// TupleOf returns the variable-arity tuple of elem.
func TupleOf(elem Descriptor) VariableTuple {
	return VariableTuple{Elem: elem}
}
