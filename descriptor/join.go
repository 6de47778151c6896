package descriptor

import (
	"github.com/hashicorp/go-set/v3"
)

// Join computes the least upper bound of ds.
//
// Nested unions are flattened and duplicates removed, keeping the order in
// which members were first seen. Bottom is the identity and is dropped, Top
// absorbs everything. A single remaining member is returned as is, and no
// members at all yield Bottom.
func Join(ds ...Descriptor) Descriptor {
	members := make([]Descriptor, 0, len(ds))
	seen := set.NewHashSet[Descriptor, uint64](len(ds))

	for _, d := range ds {
		for _, m := range flatten(d) {
			switch m.(type) {
			case Top:
				return Top{}
			case Bottom:
				continue
			}

			// a known hash still needs a structural match to count as a duplicate
			if seen.Insert(m) || !containsEqual(members, m) {
				members = append(members, m)
			}
		}
	}

	switch len(members) {
	case 0:
		return Bottom{}
	case 1:
		return members[0]
	default:
		return Union{Members: members}
	}
}

func flatten(d Descriptor) []Descriptor {
	if d == nil {
		return nil
	}

	if u, ok := d.(Union); ok {
		out := make([]Descriptor, 0, len(u.Members))
		for _, m := range u.Members {
			out = append(out, flatten(m)...)
		}

		return out
	}

	return []Descriptor{d}
}

func containsEqual(ds []Descriptor, d Descriptor) bool {
	for _, m := range ds {
		if Equal(m, d) {
			return true
		}
	}

	return false
}
