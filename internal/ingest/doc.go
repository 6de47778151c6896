// Package ingest loads record documents into values the inference engine
// understands.
//
// Documents are YAML or JSON (JSON being a subset of YAML). Mappings keep
// their document order as *value.Mapping, sequences become []any and scalars
// decode to the usual Go types (int, float64, string, bool, nil).
//
// A few tags select the richer collection shapes:
//
//	!tuple      sequence -> value.Tuple
//	!!set       mapping with null values -> *value.Set
//	!set        sequence or mapping -> *value.Set
//	!frozenset  sequence or mapping -> *value.FrozenSet
//
// For example:
//
//	point: !tuple [1, 2]
//	tags: !!set {a, b}
//	frozen: !frozenset [x, y]
//
// A stream with several documents is read as one list of records.
package ingest
