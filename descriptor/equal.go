package descriptor

// Equal reports whether a and b describe the same type.
// Unions are compared as sets, so the order members were first seen in does
// not matter.
func Equal(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch at := a.(type) {
	case Scalar:
		bt, ok := b.(Scalar)
		return ok && at.Name == bt.Name
	case Top:
		_, ok := b.(Top)
		return ok
	case Bottom:
		_, ok := b.(Bottom)
		return ok
	case EmptyTuple:
		_, ok := b.(EmptyTuple)
		return ok
	case Union:
		bt, ok := b.(Union)
		if !ok || len(at.Members) != len(bt.Members) {
			return false
		}

		for _, m := range at.Members {
			if !bt.Contains(m) {
				return false
			}
		}

		return true
	case Container:
		bt, ok := b.(Container)
		return ok && at.Kind == bt.Kind && Equal(at.Elem, bt.Elem)
	case MappingPair:
		bt, ok := b.(MappingPair)
		return ok && Equal(at.Key, bt.Key) && Equal(at.Value, bt.Value)
	case FixedTuple:
		bt, ok := b.(FixedTuple)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return false
		}

		for i := range at.Elems {
			if !Equal(at.Elems[i], bt.Elems[i]) {
				return false
			}
		}

		return true
	case VariableTuple:
		bt, ok := b.(VariableTuple)
		return ok && Equal(at.Elem, bt.Elem)
	default:
		return false
	}
}

// Contains reports whether d is one of the union's members.
func (u Union) Contains(d Descriptor) bool {
	for _, m := range u.Members {
		if Equal(m, d) {
			return true
		}
	}

	return false
}
