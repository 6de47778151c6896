package descriptor

import (
	"encoding/binary"
	"hash/fnv"
)

const (
	tagScalar byte = iota + 1
	tagTop
	tagBottom
	tagUnion
	tagContainer
	tagPair
	tagFixedTuple
	tagVariableTuple
	tagEmptyTuple
)

func hashOf(tag byte, parts ...uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte{tag})

	var buf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf[:], p)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

func (s Scalar) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte{tagScalar})
	_, _ = h.Write([]byte(s.Name))

	return h.Sum64()
}

func (Top) Hash() uint64        { return hashOf(tagTop) }
func (Bottom) Hash() uint64     { return hashOf(tagBottom) }
func (EmptyTuple) Hash() uint64 { return hashOf(tagEmptyTuple) }

// Hash sums member hashes so that member order is irrelevant.
func (u Union) Hash() uint64 {
	var sum uint64
	for _, m := range u.Members {
		sum += m.Hash()
	}

	return hashOf(tagUnion, sum, uint64(len(u.Members)))
}

func (c Container) Hash() uint64 {
	return hashOf(tagContainer, uint64(c.Kind), c.Elem.Hash())
}

func (p MappingPair) Hash() uint64 {
	return hashOf(tagPair, p.Key.Hash(), p.Value.Hash())
}

func (t FixedTuple) Hash() uint64 {
	parts := make([]uint64, 0, len(t.Elems)+1)
	parts = append(parts, uint64(len(t.Elems)))
	for _, e := range t.Elems {
		parts = append(parts, e.Hash())
	}

	return hashOf(tagFixedTuple, parts...)
}

func (t VariableTuple) Hash() uint64 {
	return hashOf(tagVariableTuple, t.Elem.Hash())
}
