package descriptor

//go:generate go tool stringer -type=ContainerEnum -output=kind_string.go

// ContainerEnum is the kind of container a Container descriptor (or a declared
// type expression) was built from.
type ContainerEnum int

const (
	_ ContainerEnum = iota // skip zero value, it marks "not a container"

	KindSlice
	KindSet
	KindFrozenSet
	KindMap
	KindChan
	KindTuple

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsContainer reports whether k names a real container kind.
func (k ContainerEnum) IsContainer() bool {
	return k > 0 && int(k) < KindTotal
}

// IsImmutable reports whether an empty container of this kind can never gain
// elements, which makes its element type Bottom rather than Top.
func (k ContainerEnum) IsImmutable() bool {
	switch k {
	default:
		return false
	case KindFrozenSet, KindTuple:
		return true
	}
}

// Keyword is the short name used when rendering descriptors.
func (k ContainerEnum) Keyword() string {
	switch k {
	case KindSlice:
		return "[]"
	case KindSet:
		return "set"
	case KindFrozenSet:
		return "frozenset"
	case KindMap:
		return "map"
	case KindChan:
		return "chan"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}
