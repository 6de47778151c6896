// Package typeexpr models declared, possibly parametrized type expressions
// such as []int, map[string]float64 or tuple[int, ...].
//
// Expressions come from three places: built directly with the constructors
// here, converted from a reflect.Type with FromReflect, or converted from a
// previously inferred descriptor with FromDescriptor. The analyzer in
// internal/analyze produces them from go/types declarations.
package typeexpr
