// Package main provides the CLI entrypoint for eltype.
//
// eltype reports the element type of record collections and of declared Go
// container types:
//   - file: loads YAML/JSON record documents and infers their element type
//   - decl: loads a Go package and reads the element type off declared types
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
