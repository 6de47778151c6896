// Package analyze loads Go packages and converts their declared types into
// type expressions for element type inference.
//
// It uses golang.org/x/tools/go/packages with go/types.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: the declared type expression of a named type
//   - TypeGraph: every exported named type of the loaded packages
package analyze
