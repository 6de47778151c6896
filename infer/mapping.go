package infer

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"eltype-inspector/descriptor"
	"eltype-inspector/value"
)

// eltypeOfMapping joins the key types and the value types independently.
// Keys and values of an empty mapping are Top, as a mapping can still grow.
func (in *Inferrer) eltypeOfMapping(x any) (descriptor.MappingPair, error) {
	keys, values := pairsOf(x)

	kt, err := in.eltypeOfMembers(keys, false)
	if err != nil {
		return descriptor.MappingPair{}, fmt.Errorf("mapping keys: %w", err)
	}

	vt, err := in.eltypeOfMembers(values, false)
	if err != nil {
		return descriptor.MappingPair{}, fmt.Errorf("mapping values: %w", err)
	}

	return descriptor.Pair(kt, vt), nil
}

// pairsOf lists keys and values of a mapping-shaped value. Go maps are read
// in sorted key order so that first-seen union order is reproducible.
func pairsOf(x any) (keys, values []any) {
	if p, ok := x.(value.Pairs); ok {
		return p.Keys(), p.Values()
	}

	rv := reflect.ValueOf(x)

	mkeys := rv.MapKeys()
	slices.SortStableFunc(mkeys, compareKeys)

	keys = make([]any, len(mkeys))
	values = make([]any, len(mkeys))
	for i, k := range mkeys {
		keys[i] = k.Interface()
		values[i] = rv.MapIndex(k).Interface()
	}

	return keys, values
}

// compareKeys orders map keys by type name, then by value.
func compareKeys(a, b reflect.Value) int {
	a, b = concrete(a), concrete(b)

	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(validity(a), validity(b))
	}

	if a.Type() != b.Type() {
		return cmp.Compare(a.Type().String(), b.Type().String())
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	default:
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func concrete(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	return v
}

func validity(v reflect.Value) int {
	if v.IsValid() {
		return 1
	}

	return 0
}
