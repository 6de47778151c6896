package typeexpr

import (
	"reflect"

	"eltype-inspector/descriptor"
)

// Namer names the scalar descriptor produced for a Go type.
type Namer func(rt reflect.Type) string

// FromDescriptor reads an inferred descriptor back as a declared type, so that
// the element type of an element type can be asked for.
func FromDescriptor(d descriptor.Descriptor) Expr {
	switch dt := d.(type) {
	case descriptor.Container:
		if pair, ok := dt.Elem.(descriptor.MappingPair); ok && dt.Kind == descriptor.KindMap {
			return Container(descriptor.KindMap, pair.Key, pair.Value)
		}

		return Container(dt.Kind, dt.Elem)
	case descriptor.FixedTuple:
		return Tuple(dt.Elems...)
	case descriptor.VariableTuple:
		return VariadicTuple(dt.Elem)
	case descriptor.EmptyTuple:
		return Generic(descriptor.KindTuple)
	case descriptor.MappingPair:
		return Tuple(dt.Key, dt.Value)
	case nil:
		return Of(descriptor.Top{}.String())
	default:
		return Of(d.String())
	}
}

// FromReflect converts rt into a declared type expression.
// Pointers are followed, arrays become tuple[T, ...] since every position of
// a Go array shares one type, and a nil namer falls back to rt.String().
func FromReflect(rt reflect.Type, namer Namer) Expr {
	if namer == nil {
		namer = reflect.Type.String
	}

	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if rt == nil {
		return Of(descriptor.Top{}.String())
	}

	c := converter{namer: namer, visiting: map[reflect.Type]bool{rt: true}}
	name := originName(rt, namer)

	switch rt.Kind() {
	case reflect.Slice:
		return Expr{Name: name, Kind: descriptor.KindSlice, Args: c.args(rt.Elem())}
	case reflect.Chan:
		return Expr{Name: name, Kind: descriptor.KindChan, Args: c.args(rt.Elem())}
	case reflect.Map:
		return Expr{Name: name, Kind: descriptor.KindMap, Args: c.args(rt.Key(), rt.Elem())}
	case reflect.Array:
		if rt.Len() == 0 {
			return Expr{Name: name, Kind: descriptor.KindTuple}
		}

		return Expr{Name: name, Kind: descriptor.KindTuple, Args: []descriptor.Descriptor{c.descriptorOf(rt.Elem()), Ellipsis}}
	default:
		return Of(namer(rt))
	}
}

type converter struct {
	namer    Namer
	visiting map[reflect.Type]bool
}

func (c converter) args(types ...reflect.Type) []descriptor.Descriptor {
	out := make([]descriptor.Descriptor, len(types))
	for i, t := range types {
		out[i] = c.descriptorOf(t)
	}

	return out
}

func (c converter) descriptorOf(rt reflect.Type) descriptor.Descriptor {
	if rt == nil {
		return descriptor.Top{}
	}

	if rt.Kind() == reflect.Interface {
		return descriptor.Top{}
	}

	// recursive named types stop at their name
	if c.visiting[rt] {
		return descriptor.NewScalar(c.namer(rt))
	}

	c.visiting[rt] = true
	defer delete(c.visiting, rt)

	switch rt.Kind() {
	case reflect.Slice:
		return descriptor.SliceOf(c.descriptorOf(rt.Elem()))
	case reflect.Chan:
		return descriptor.Container{Kind: descriptor.KindChan, Elem: c.descriptorOf(rt.Elem())}
	case reflect.Map:
		return descriptor.MapOf(c.descriptorOf(rt.Key()), c.descriptorOf(rt.Elem()))
	case reflect.Array:
		if rt.Len() == 0 {
			return descriptor.EmptyTuple{}
		}

		return descriptor.TupleOf(c.descriptorOf(rt.Elem()))
	default:
		return descriptor.NewScalar(c.namer(rt))
	}
}

func originName(rt reflect.Type, namer Namer) string {
	if rt.Name() != "" {
		return namer(rt)
	}

	switch rt.Kind() {
	case reflect.Slice:
		return descriptor.KindSlice.Keyword()
	case reflect.Chan:
		return descriptor.KindChan.Keyword()
	case reflect.Map:
		return descriptor.KindMap.Keyword()
	default:
		return descriptor.KindTuple.Keyword()
	}
}
