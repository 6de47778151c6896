package infer

import (
	"github.com/hashicorp/go-set/v3"

	"eltype-inspector/descriptor"
)

// typeOfTuple types a single tuple observation position by position.
func (in *Inferrer) typeOfTuple(members []any) (descriptor.Descriptor, error) {
	elems := make([]descriptor.Descriptor, len(members))
	for i, m := range members {
		t, err := in.TypeOf(m)
		if err != nil {
			return nil, err
		}

		elems[i] = t
	}

	return descriptor.Tuple(elems...), nil
}

// typeOfTuples types a group of tuples observed together.
//
// Empty tuples are set aside: if nothing else is left the result is
// EmptyTuple, otherwise EmptyTuple joins whatever the rest produce. When the
// remaining tuples share one arity each position is joined on its own, giving
// a fixed tuple; when arities differ every element is joined into one
// variable tuple.
func (in *Inferrer) typeOfTuples(tuples [][]any) (descriptor.Descriptor, error) {
	arities := set.New[int](len(tuples))
	for _, tup := range tuples {
		arities.Insert(len(tup))
	}

	hasEmpty := arities.Contains(0)
	if hasEmpty && arities.Size() == 1 {
		return descriptor.EmptyTuple{}, nil
	}

	rows := tuples
	if hasEmpty {
		rows = make([][]any, 0, len(tuples))
		for _, tup := range tuples {
			if len(tup) > 0 {
				rows = append(rows, tup)
			}
		}

		arities.Remove(0)
	}

	var (
		t   descriptor.Descriptor
		err error
	)
	if arities.Size() == 1 {
		t, err = in.typeOfColumns(rows)
	} else {
		t, err = in.typeOfFlattened(rows)
	}
	if err != nil {
		return nil, err
	}

	if hasEmpty {
		t = descriptor.Join(t, descriptor.EmptyTuple{})
	}

	return t, nil
}

// typeOfColumns joins position j of every row into element j of a fixed tuple.
// All rows have the same, non-zero length.
func (in *Inferrer) typeOfColumns(rows [][]any) (descriptor.Descriptor, error) {
	arity := len(rows[0])
	elems := make([]descriptor.Descriptor, arity)

	column := make([]any, len(rows))
	for j := range arity {
		for i, row := range rows {
			column[i] = row[j]
		}

		t, err := in.unionOf(column)
		if err != nil {
			return nil, err
		}

		elems[j] = t
	}

	return descriptor.FixedTuple{Elems: elems}, nil
}

// typeOfFlattened joins every element of every row into a variable tuple.
func (in *Inferrer) typeOfFlattened(rows [][]any) (descriptor.Descriptor, error) {
	var all []any
	for _, row := range rows {
		all = append(all, row...)
	}

	elem, err := in.unionOf(all)
	if err != nil {
		return nil, err
	}

	return descriptor.TupleOf(elem), nil
}
