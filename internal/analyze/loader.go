package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"eltype-inspector/descriptor"
	"eltype-inspector/internal/common"
	"eltype-inspector/typeexpr"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and converts their declared types.
type Analyzer struct {
	graph     *TypeGraph
	qualifier types.Qualifier
	visiting  map[*types.TypeName]bool // Named types being converted, to stop on recursion
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithFullPaths qualifies named types with their full import path instead of
// the package alias.
func WithFullPaths() Option {
	return func(a *Analyzer) {
		a.qualifier = func(pkg *types.Package) string { return pkg.Path() }
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:     NewTypeGraph(),
		qualifier: func(pkg *types.Package) string { return common.PkgAlias(pkg.Path()) },
		visiting:  make(map[*types.TypeName]bool),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and converts their exported types.
// Patterns are standard Go package patterns (e.g., "./store", "eltype-inspector/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// processPackage extracts declared types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		info := a.Declared(typeName)
		info.ID = id

		a.graph.Types[id] = info
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// Declared converts a declared type name into a TypeInfo.
func (a *Analyzer) Declared(obj *types.TypeName) *TypeInfo {
	info := &TypeInfo{
		GoType: obj.Type(),
		Expr:   a.Expr(obj.Type()),
	}

	if named, ok := types.Unalias(obj.Type()).(*types.Named); ok {
		info.Generic = named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0
	}

	return info
}

// Expr converts t into a declared type expression. Pointers are followed,
// arrays become tuple[T, ...] and generic types without type arguments keep
// their container kind but declare no arguments.
func (a *Analyzer) Expr(t types.Type) typeexpr.Expr {
	t = types.Unalias(t)
	for {
		ptr, ok := t.Underlying().(*types.Pointer)
		if !ok {
			break
		}

		t = types.Unalias(ptr.Elem())
	}

	name := types.TypeString(t, a.qualifier)

	named, _ := t.(*types.Named)
	if named != nil {
		a.visiting[named.Obj()] = true
		defer delete(a.visiting, named.Obj())

		if named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0 {
			return typeexpr.Expr{Name: name, Kind: kindOf(t.Underlying())}
		}
	}

	switch ut := t.Underlying().(type) {
	case *types.Slice:
		return typeexpr.Expr{Name: originName(named, name, descriptor.KindSlice), Kind: descriptor.KindSlice, Args: a.args(ut.Elem())}
	case *types.Chan:
		return typeexpr.Expr{Name: originName(named, name, descriptor.KindChan), Kind: descriptor.KindChan, Args: a.args(ut.Elem())}
	case *types.Map:
		return typeexpr.Expr{Name: originName(named, name, descriptor.KindMap), Kind: descriptor.KindMap, Args: a.args(ut.Key(), ut.Elem())}
	case *types.Array:
		e := typeexpr.Expr{Name: originName(named, name, descriptor.KindTuple), Kind: descriptor.KindTuple}
		if ut.Len() > 0 {
			e.Args = []descriptor.Descriptor{a.Descriptor(ut.Elem()), typeexpr.Ellipsis}
		}

		return e
	default:
		return typeexpr.Of(name)
	}
}

// Descriptor converts t into the descriptor a value of type t is given as an
// element of a container.
func (a *Analyzer) Descriptor(t types.Type) descriptor.Descriptor {
	t = types.Unalias(t)

	if _, ok := t.Underlying().(*types.Interface); ok {
		return descriptor.Top{}
	}

	if named, ok := t.(*types.Named); ok {
		// recursive named types stop at their name
		if a.visiting[named.Obj()] {
			return descriptor.NewScalar(types.TypeString(t, a.qualifier))
		}

		a.visiting[named.Obj()] = true
		defer delete(a.visiting, named.Obj())
	}

	switch ut := t.Underlying().(type) {
	case *types.Slice:
		return descriptor.SliceOf(a.Descriptor(ut.Elem()))
	case *types.Chan:
		return descriptor.Container{Kind: descriptor.KindChan, Elem: a.Descriptor(ut.Elem())}
	case *types.Map:
		return descriptor.MapOf(a.Descriptor(ut.Key()), a.Descriptor(ut.Elem()))
	case *types.Array:
		if ut.Len() == 0 {
			return descriptor.EmptyTuple{}
		}

		return descriptor.TupleOf(a.Descriptor(ut.Elem()))
	default:
		return descriptor.NewScalar(types.TypeString(t, a.qualifier))
	}
}

func (a *Analyzer) args(ts ...types.Type) []descriptor.Descriptor {
	out := make([]descriptor.Descriptor, len(ts))
	for i, t := range ts {
		out[i] = a.Descriptor(t)
	}

	return out
}

func kindOf(t types.Type) descriptor.ContainerEnum {
	switch t.(type) {
	case *types.Slice:
		return descriptor.KindSlice
	case *types.Chan:
		return descriptor.KindChan
	case *types.Map:
		return descriptor.KindMap
	case *types.Array:
		return descriptor.KindTuple
	default:
		return 0
	}
}

func originName(named *types.Named, name string, kind descriptor.ContainerEnum) string {
	if named != nil {
		return name
	}

	return kind.Keyword()
}
