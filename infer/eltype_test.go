package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eltype-inspector/descriptor"
	"eltype-inspector/value"
)

var (
	intT   = descriptor.NewScalar("int")
	strT   = descriptor.NewScalar("string")
	floatT = descriptor.NewScalar("float64")
	nilT   = descriptor.NewScalar("nil")
)

func assertType(t *testing.T, want, got descriptor.Descriptor) {
	t.Helper()
	assert.Truef(t, descriptor.Equal(want, got), "want %s, got %v", want, got)
}

func TestEltype_Values(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want descriptor.Descriptor
	}{
		// homogeneous containers
		{"any slice", []any{1, 2}, intT},
		{"typed slice", []int{1, 2}, intT},
		{"tuple", value.Tuple{1, 2, 3}, intT},
		{"set", value.NewSet("a", "b"), strT},
		{"string slice", []string{"a", "b"}, strT},
		{"array", [3]int{1, 2, 3}, intT},

		// strings are atomic
		{"string", "hello", strT},
		{"single char", "a", strT},

		// mappings
		{"int map", map[int]int{1: 2, 3: 4}, descriptor.Pair(intT, intT)},
		{"int to string map", map[int]string{1: "a", 2: "b"}, descriptor.Pair(intT, strT)},
		{
			"mixed map keys and values are joined independently",
			map[any]any{1: "a", "b": 2},
			descriptor.Pair(descriptor.Join(intT, strT), descriptor.Join(intT, strT)),
		},
		{
			"mixed map values",
			map[int]any{1: 2, 3: 3.14},
			descriptor.Pair(intT, descriptor.Join(intT, floatT)),
		},

		// heterogeneous members
		{"mixed tuple", value.Tuple{1, 2.0, "c"}, descriptor.Join(intT, floatT, strT)},
		{"nested lists", []any{[]any{"a"}, []any{"b", "c"}}, descriptor.SliceOf(strT)},
		{
			"deeply nested",
			[]any{1, 2, []any{3, []any{4, 5}}},
			descriptor.Join(intT, descriptor.SliceOf(descriptor.Join(intT, descriptor.SliceOf(intT)))),
		},
		{"nils", []any{nil, nil}, nilT},

		// non-containers have no elements to speak of
		{"nil", nil, descriptor.Top{}},
		{"int", 1, descriptor.Top{}},
		{"float", 1.0, descriptor.Top{}},
		{"struct", struct{ A int }{1}, descriptor.Top{}},
		{"nil pointer", (*[]int)(nil), descriptor.Top{}},
		{"pointer to slice", &[]int{1}, intT},

		// empty containers
		{"empty tuple", value.Tuple{}, descriptor.Bottom{}},
		{"empty frozenset", value.NewFrozenSet(), descriptor.Bottom{}},
		{"empty array", [0]int{}, descriptor.Bottom{}},
		{"empty slice", []any{}, descriptor.Top{}},
		{"nil slice", []int(nil), descriptor.Top{}},
		{"empty set", value.NewSet(), descriptor.Top{}},
		{"empty map", map[string]int{}, descriptor.Pair(descriptor.Top{}, descriptor.Top{})},
		{"nil map", map[string]int(nil), descriptor.Pair(descriptor.Top{}, descriptor.Top{})},
		{"nil set", (*value.Set)(nil), descriptor.Top{}},
		{"nil frozenset", (*value.FrozenSet)(nil), descriptor.Bottom{}},
		{"nil mapping", (*value.Mapping)(nil), descriptor.Pair(descriptor.Top{}, descriptor.Top{})},
		{"nil iterator", (*value.SliceIterator)(nil), descriptor.Top{}},
		{"empty mapping", value.NewMapping(), descriptor.Pair(descriptor.Top{}, descriptor.Top{})},
		{"list of empty list", []any{[]any{}}, descriptor.SliceOf(descriptor.Top{})},
		{"list of empty set", []any{value.NewSet()}, descriptor.SetOf(descriptor.Top{})},
		{"list of empty frozenset", []any{value.NewFrozenSet()}, descriptor.FrozenSetOf(descriptor.Bottom{})},
		{"list of empty map", []any{map[string]int{}}, descriptor.MapOf(descriptor.Top{}, descriptor.Top{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eltype(tt.in)
			require.NoError(t, err)
			assertType(t, tt.want, got)
		})
	}
}

func TestEltype_Tuples(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want descriptor.Descriptor
	}{
		{
			"same arity",
			[]any{value.Tuple{1, 2, 3}, value.Tuple{4, 5, 6}},
			descriptor.Tuple(intT, intT, intT),
		},
		{
			"same arity, typed per position",
			[]any{value.Tuple{1, "a", 3.2}, value.Tuple{4, "b", 6.2}},
			descriptor.Tuple(intT, strT, floatT),
		},
		{
			"same arity, joined per position",
			[]any{value.Tuple{1, "a", 3.2}, value.Tuple{4, 6.2, "b"}},
			descriptor.Tuple(intT, descriptor.Join(strT, floatT), descriptor.Join(floatT, strT)),
		},
		{
			"differing arity",
			[]any{value.Tuple{1, 2, 3}, value.Tuple{4, 5}},
			descriptor.TupleOf(intT),
		},
		{
			"differing arity, three tuples",
			[]any{value.Tuple{1, 2, 3}, value.Tuple{4, 5}, value.Tuple{6}},
			descriptor.TupleOf(intT),
		},
		{
			"differing arity, mixed types",
			[]any{value.Tuple{1, "a", 3.2}, value.Tuple{6.2, "b"}, value.Tuple{"c", "b", 2, 3.4}},
			descriptor.TupleOf(descriptor.Join(intT, strT, floatT)),
		},
		{
			"only empty",
			[]any{value.Tuple{}},
			descriptor.EmptyTuple{},
		},
		{
			"several empty",
			[]any{value.Tuple{}, value.Tuple{}},
			descriptor.EmptyTuple{},
		},
		{
			"fixed and empty",
			[]any{value.Tuple{1, 2, 3}, value.Tuple{}},
			descriptor.Join(descriptor.Tuple(intT, intT, intT), descriptor.EmptyTuple{}),
		},
		{
			"variable and empty",
			[]any{value.Tuple{1, 2, 3}, value.Tuple{1, 2}, value.Tuple{1}, value.Tuple{}},
			descriptor.Join(descriptor.TupleOf(intT), descriptor.EmptyTuple{}),
		},
		{
			"arrays are tuples",
			[]any{[2]int{1, 2}, [2]int{3, 4}},
			descriptor.Tuple(intT, intT),
		},
		{
			"tuples next to scalars",
			[]any{"x", value.Tuple{1, 2}, 3, value.Tuple{3, 4}},
			descriptor.Join(strT, intT, descriptor.Tuple(intT, intT)),
		},
		{
			"nested tuples join column-wise",
			[]any{value.Tuple{value.Tuple{1}, "a"}, value.Tuple{value.Tuple{"b"}, "c"}},
			descriptor.Tuple(descriptor.Tuple(descriptor.Join(intT, strT)), strT),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eltype(tt.in)
			require.NoError(t, err)
			assertType(t, tt.want, got)
		})
	}
}

func TestEltype_NestedMappings(t *testing.T) {
	inner := value.NewMapping()
	inner.Set(1, "a")
	inner.Set(value.Tuple{1, 2, 3}, []any{})
	inner.Set(5, 3)
	inner.Set(2, value.NewSet(1, 3.4, "a"))

	outer := value.NewMapping()
	outer.Set(1, 2)
	outer.Set("3", 4)
	outer.Set(4.2, inner)

	got, err := Eltype(outer)
	require.NoError(t, err)

	want := descriptor.Pair(
		descriptor.Join(intT, strT, floatT),
		descriptor.Join(
			intT,
			descriptor.MapOf(
				descriptor.Join(intT, descriptor.Tuple(intT, intT, intT)),
				descriptor.Join(strT, descriptor.SliceOf(descriptor.Top{}), intT, descriptor.SetOf(descriptor.Join(intT, floatT, strT))),
			),
		),
	)
	assertType(t, want, got)
}

func TestEltype_MappingKeysAreNotZipped(t *testing.T) {
	m := value.NewMapping()
	m.Set(1, "a")
	m.Set("b", 2)

	got, err := Eltype(m)
	require.NoError(t, err)

	pair, ok := got.(descriptor.MappingPair)
	require.True(t, ok, "got %s", got)
	assert.Equal(t, "int | string", pair.Key.String())
	assert.Equal(t, "string | int", pair.Value.String())
}

func TestEltype_GoMapOrderIsStable(t *testing.T) {
	m := map[any]int{"b": 1, 3: 2, "a": 3, 1: 4, 2.5: 5}

	first, err := Eltype(m)
	require.NoError(t, err)

	for range 20 {
		got, err := Eltype(m)
		require.NoError(t, err)
		assert.Equal(t, first.String(), got.String())
	}

	assert.Equal(t, "(float64 | int | string, int)", first.String())
}

func TestEltype_DrainsIterator(t *testing.T) {
	it := value.Iter(1, 2, 3)

	got, err := Eltype(it)
	require.NoError(t, err)
	assertType(t, intT, got)

	_, ok := it.Next()
	assert.False(t, ok, "iterator should be exhausted")

	again, err := Eltype(it)
	require.NoError(t, err)
	assertType(t, descriptor.Top{}, again)
}

func TestEltype_DrainsChannel(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	got, err := Eltype(ch)
	require.NoError(t, err)
	assertType(t, intT, got)

	_, ok := <-ch
	assert.False(t, ok, "channel should be drained")
}

func TestEltype_ChannelDoesNotBlock(t *testing.T) {
	ch := make(chan string)

	got, err := Eltype(ch)
	require.NoError(t, err)
	assertType(t, descriptor.Top{}, got)

	var sendOnly chan<- string = make(chan string, 1)
	got, err = Eltype(sendOnly)
	require.NoError(t, err)
	assertType(t, descriptor.Top{}, got)
}

func TestEltype_NestedIteratorIsScalar(t *testing.T) {
	it := value.Iter(1)

	got, err := Eltype([]any{it})
	require.NoError(t, err)
	assertType(t, descriptor.NewScalar("*value.SliceIterator"), got)

	item, ok := it.Next()
	require.True(t, ok, "nested iterator must not be drained")
	assert.Equal(t, 1, item)
}

func TestEltype_BottomTypeMisuse(t *testing.T) {
	for _, in := range []any{value.Never{}, &value.Never{}, []any{1, value.Never{}}, value.Tuple{value.Never{}}} {
		_, err := Eltype(in)
		assert.ErrorIs(t, err, ErrBottomTypeMisuse)
	}

	m := value.NewMapping()
	m.Set("k", value.Never{})
	_, err := Eltype(m)
	assert.ErrorIs(t, err, ErrBottomTypeMisuse)
}

func TestEltype_DoesNotMutateInput(t *testing.T) {
	in := []any{value.Tuple{1, 2}, value.Tuple{}, map[string]int{"a": 1}}
	snapshot := []any{value.Tuple{1, 2}, value.Tuple{}, map[string]int{"a": 1}}

	_, err := Eltype(in)
	require.NoError(t, err)
	assert.Equal(t, snapshot, in)
}

func TestEltype_DrainingKeepsCallerItems(t *testing.T) {
	items := []any{1, 2, 3}

	got, err := Eltype(value.Iter(items...))
	require.NoError(t, err)
	assertType(t, intT, got)

	assert.Equal(t, []any{1, 2, 3}, items)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want descriptor.Descriptor
	}{
		{"int", 1, intT},
		{"string", "s", strT},
		{"nil", nil, nilT},
		{"slice", []any{1, "a"}, descriptor.SliceOf(descriptor.Join(intT, strT))},
		{"empty slice", []int{}, descriptor.SliceOf(descriptor.Top{})},
		{"tuple", value.Tuple{1, "a"}, descriptor.Tuple(intT, strT)},
		{"empty tuple", value.Tuple{}, descriptor.EmptyTuple{}},
		{"array", [2]string{"a", "b"}, descriptor.Tuple(strT, strT)},
		{"nested tuple", value.Tuple{value.Tuple{1}}, descriptor.Tuple(descriptor.Tuple(intT))},
		{"map", map[string]int{"a": 1}, descriptor.MapOf(strT, intT)},
		{"frozenset", value.NewFrozenSet(1), descriptor.FrozenSetOf(intT)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeOf(tt.in)
			require.NoError(t, err)
			assertType(t, tt.want, got)
		})
	}
}

func TestUnion(t *testing.T) {
	got, err := Union([]any{1, "a", 1})
	require.NoError(t, err)
	assertType(t, descriptor.Join(intT, strT), got)

	reversed, err := Union([]any{"a", 1})
	require.NoError(t, err)
	assert.True(t, descriptor.Equal(got, reversed))

	single, err := Union([]any{1})
	require.NoError(t, err)
	assertType(t, intT, single)

	chars, err := Union("ab")
	require.NoError(t, err)
	assertType(t, strT, chars)

	keys, err := Union(map[string]int{"a": 1})
	require.NoError(t, err)
	assertType(t, strT, keys)

	empty, err := Union(value.Tuple{})
	require.NoError(t, err)
	assertType(t, descriptor.Bottom{}, empty)
}

func TestUnion_InvalidArgument(t *testing.T) {
	for _, in := range []any{42, nil, 1.5, struct{}{}} {
		_, err := Union(in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}
