package infer

import (
	"reflect"

	"eltype-inspector/descriptor"
	"eltype-inspector/value"
)

// eltypeOfMembers joins the member types; the caller's container decides
// what an empty member list means.
func (in *Inferrer) eltypeOfMembers(members []any, immutable bool) (descriptor.Descriptor, error) {
	if len(members) == 0 {
		if immutable {
			return descriptor.Bottom{}, nil
		}

		return descriptor.Top{}, nil
	}

	return in.unionOf(members)
}

// unionOf types every member and joins the results. Tuple-shaped members are
// set aside and typed together by typeOfTuples, so that tuples of one arity
// merge column by column instead of piling up as separate union members.
func (in *Inferrer) unionOf(members []any) (descriptor.Descriptor, error) {
	rest := make([]descriptor.Descriptor, 0, len(members))

	var tuples [][]any
	for _, m := range members {
		shape, m := classify(m)
		if shape == ShapeTuple {
			items, _ := membersOf(m)
			tuples = append(tuples, items)

			continue
		}

		t, err := in.typeOfShaped(shape, m)
		if err != nil {
			return nil, err
		}

		rest = append(rest, t)
	}

	if len(tuples) > 0 {
		t, err := in.typeOfTuples(tuples)
		if err != nil {
			return nil, err
		}

		rest = append(rest, t)
	}

	return descriptor.Join(rest...), nil
}

// membersOf lists the members of a tuple- or sequence-shaped value.
func membersOf(x any) ([]any, descriptor.ContainerEnum) {
	switch xt := x.(type) {
	case value.Tuple:
		return xt, descriptor.KindTuple
	case value.Collection:
		return xt.Members(), xt.Kind()
	}

	rv := reflect.ValueOf(x)

	members := make([]any, rv.Len())
	for i := range members {
		members[i] = rv.Index(i).Interface()
	}

	if rv.Kind() == reflect.Array {
		return members, descriptor.KindTuple
	}

	return members, descriptor.KindSlice
}

// drain exhausts a one-shot sequence into a buffered list. Channels are read
// without blocking, so only values already sent are seen.
func drain(x any) []any {
	if it, ok := x.(value.Iterator); ok {
		return value.Drain(it)
	}

	rv := reflect.ValueOf(x)

	var out []any
	for {
		item, ok := rv.TryRecv()
		if !ok {
			return out
		}

		out = append(out, item.Interface())
	}
}

func charsOf(x any) []any {
	s := reflect.ValueOf(x).String()

	out := make([]any, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}
