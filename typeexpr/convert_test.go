package typeexpr

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"eltype-inspector/descriptor"
)

type tree []tree

type labels map[string][]string

func TestFromReflect(t *testing.T) {
	intT := descriptor.NewScalar("int")
	strT := descriptor.NewScalar("string")

	tests := []struct {
		name string
		in   reflect.Type
		want Expr
	}{
		{"slice", reflect.TypeOf([]int{}), Slice(intT)},
		{"pointer to slice", reflect.TypeOf(&[]string{}), Slice(strT)},
		{"map", reflect.TypeOf(map[string]int{}), Map(strT, intT)},
		{"chan", reflect.TypeOf(make(chan int)), Container(descriptor.KindChan, intT)},
		{"array", reflect.TypeOf([3]int{}), VariadicTuple(intT)},
		{"empty array", reflect.TypeOf([0]int{}), Generic(descriptor.KindTuple)},
		{"interface elem", reflect.TypeOf([]any{}), Slice(descriptor.Top{})},
		{"nested", reflect.TypeOf([][]int{}), Slice(descriptor.SliceOf(intT))},
		{"scalar", reflect.TypeOf(0), Of("int")},
		{"struct", reflect.TypeOf(struct{}{}), Of("struct {}")},
		{
			"named map",
			reflect.TypeOf(labels{}),
			Expr{Name: "typeexpr.labels", Kind: descriptor.KindMap, Args: []descriptor.Descriptor{strT, descriptor.SliceOf(strT)}},
		},
		{
			"recursive",
			reflect.TypeOf(tree{}),
			Expr{Name: "typeexpr.tree", Kind: descriptor.KindSlice, Args: []descriptor.Descriptor{descriptor.NewScalar("typeexpr.tree")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromReflect(tt.in, nil))
		})
	}
}

func TestFromReflect_Nil(t *testing.T) {
	got := FromReflect(nil, nil)
	assert.False(t, got.IsContainer())
}

func TestFromReflect_CustomNamer(t *testing.T) {
	namer := func(rt reflect.Type) string { return "T:" + rt.Name() }

	got := FromReflect(reflect.TypeOf([]int{}), namer)
	assert.Equal(t, Slice(descriptor.NewScalar("T:int")), got)
}

func TestFromDescriptor(t *testing.T) {
	intT := descriptor.NewScalar("int")
	strT := descriptor.NewScalar("string")

	tests := []struct {
		name string
		in   descriptor.Descriptor
		want Expr
	}{
		{"slice", descriptor.SliceOf(intT), Slice(intT)},
		{"set", descriptor.SetOf(strT), Container(descriptor.KindSet, strT)},
		{"map", descriptor.MapOf(strT, intT), Map(strT, intT)},
		{"fixed tuple", descriptor.Tuple(intT, strT), Tuple(intT, strT)},
		{"variable tuple", descriptor.TupleOf(intT), VariadicTuple(intT)},
		{"empty tuple", descriptor.EmptyTuple{}, Generic(descriptor.KindTuple)},
		{"pair", descriptor.Pair(strT, intT), Tuple(strT, intT)},
		{"scalar", intT, Of("int")},
		{"union", descriptor.Join(intT, strT), Of("int | string")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromDescriptor(tt.in))
		})
	}
}

func TestExpr_String(t *testing.T) {
	intT := descriptor.NewScalar("int")

	assert.Equal(t, "[][int]", Slice(intT).String())
	assert.Equal(t, "tuple[int, ...]", VariadicTuple(intT).String())
	assert.Equal(t, "map", Generic(descriptor.KindMap).String())
	assert.Equal(t, "int", Of("int").String())
	assert.True(t, IsEllipsis(VariadicTuple(intT).Args[1]))
	assert.False(t, IsEllipsis(intT))
}
