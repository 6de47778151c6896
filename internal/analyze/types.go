package analyze

import (
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"eltype-inspector/internal/common"
	"eltype-inspector/typeexpr"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "eltype-inspector/store"
	Name    string // e.g., "Orders"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the TypeID qualified with the package alias, e.g. "store.Orders".
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// TypeInfo describes a declared type.
type TypeInfo struct {
	ID      TypeID        // Declared name
	Expr    typeexpr.Expr // Declared type expression, ready for element type inference
	GoType  types.Type    // The original go/types.Type
	Generic bool          // True for generic types declared without type arguments
}

// TypeGraph holds all declared types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup finds a type by name. The name may be bare ("Orders"), qualified
// with the package alias ("store.Orders") or with the full import path.
func (g *TypeGraph) Lookup(name string) (*TypeInfo, error) {
	var matches []*TypeInfo

	for id, info := range g.Types {
		if id.String() == name || id.Short() == name || (!strings.Contains(name, ".") && id.Name == name) {
			matches = append(matches, info)
		}
	}

	info, err := common.Only(matches)
	if err != nil {
		if len(matches) == 0 {
			return nil, fmt.Errorf("type %s not found", name)
		}

		return nil, fmt.Errorf("type %s is ambiguous (%d matches): %w", name, len(matches), err)
	}

	return info, nil
}

// PackagePaths returns the import paths of the loaded packages in ascending order.
func (g *TypeGraph) PackagePaths() []string {
	paths := maps.Keys(g.Packages)
	slices.Sort(paths)

	return paths
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
