// Package infer computes the element type of runtime values and of declared
// types.
//
// Every input is classified once into a ShapeEnum and dispatched:
//   - type expressions yield their declared element type
//   - one-shot sequences are drained, then treated as lists
//   - mappings yield independently joined key and value types
//   - strings are atomic
//   - tuples, arrays, slices and collections join the types of their members
//   - everything else has element type Top
//
// Key functions:
//   - Eltype: element type of a value or declared type
//   - TypeOf: type of a value seen as an element
//   - Union: join of the member types of an iterable
//   - Classify: the shape an input is dispatched on
package infer
