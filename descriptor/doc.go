// Package descriptor provides the type descriptors produced by element type
// inference and the join algebra over them.
//
// Key types:
//   - Descriptor: closed set of shapes (Scalar, Top, Bottom, Union, Container,
//     MappingPair, FixedTuple, VariableTuple, EmptyTuple)
//   - ContainerEnum: the container kind a descriptor was observed in
//
// Key functions:
//   - Join: flattening, deduplicating union with Bottom as identity and Top
//     as absorbing element
//   - Equal: structural equality, unions compared as sets
package descriptor
