// Package value provides the value shapes element type inference understands
// beyond plain Go slices, arrays, maps and channels.
//
// Key types:
//   - Tuple: fixed-length, positionally ordered aggregate
//   - Set, FrozenSet: insertion ordered sets, mutable and immutable
//   - Mapping: insertion ordered key/value association
//   - Iterator: one-shot sequence, drained on inspection
//   - Never: the bottom-type marker, which no value may inhabit
//
// Custom containers take part in inference by implementing Collection,
// Pairs or Iterator.
package value
