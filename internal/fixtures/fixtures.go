// Package fixtures builds small, hand-constructed DataType graphs for
// use by cmd/typecheck's demo driver and by package tests, standing
// in for what a real parser would hand the core (parsing is out of
// scope per spec §1). Grounded on the teacher's own fixture-builder
// style, generalized from AILANG source snippets to directly
// constructed DataType graphs.
package fixtures

import (
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype/cache"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/resolve"
)

// World bundles a Registry and a root Context, wired up so fixtures
// can declare types under a package and resolve references against
// them immediately.
type World struct {
	Registry *resolve.Registry
	Ctx      *resolve.Context
	Sink     *resolve.Sink
}

// NewWorld builds an empty World rooted at the given package id.
func NewWorld(pkg string) *World {
	reg := resolve.NewRegistry()
	sink := resolve.NewSink()
	ctx := resolve.NewContext(reg, dtype.PackageID(pkg), sink)
	return &World{Registry: reg, Ctx: ctx, Sink: sink}
}

// Declare registers a (possibly generic) named type in the world's
// root package scope and returns the DeclaredType wrapper.
func (w *World) Declare(name string, generics []string, body dtype.DataType) *cache.DeclaredType {
	decl := cache.NewDeclaredType(name, generics, body)
	w.Registry.Scope(w.Ctx.CurrentPackage()).Define(name, decl)
	return decl
}

// Basic is a convenience constructor for a basic scalar fixture.
func Basic(k dtype.Kind) *dtype.BasicType {
	return dtype.NewBasic(k, ast.Unknown)
}

// Vec builds the spec §8 scenario 3 fixture: `Vec<T> = struct{items:
// Array<T>}`, declared generic over T.
func (w *World) Vec() *cache.DeclaredType {
	t := dtype.NewGeneric("T", nil, ast.Unknown)
	body := dtype.NewStruct([]dtype.StructField{
		{Name: "items", Type: dtype.NewArray(t, ast.Unknown)},
	}, ast.Unknown)
	return w.Declare("Vec", []string{"T"}, body)
}

// Tree builds the spec §8 scenario 4 fixture: `Tree<T> = variant{
// Leaf, Node(l: Tree<T>, r: Tree<T>) }`. The recursive Tree<T>
// references are left as Reference nodes pointing back at "Tree" with
// the same generic T, relying on the resolver's cache plus the
// recursion guard to terminate.
func (w *World) Tree() *cache.DeclaredType {
	variant := dtype.NewVariant("Tree", ast.Unknown)
	leaf := dtype.NewVariantConstructor("Leaf", ast.Unknown)
	leaf.Parent = variant
	leaf.TagID = 0

	node := dtype.NewVariantConstructor("Node", ast.Unknown)
	node.Parent = variant
	node.TagID = 1
	selfRef := func() dtype.DataType {
		return dtype.NewReference("Tree", []dtype.DataType{dtype.NewGeneric("T", nil, ast.Unknown)}, w.Ctx.CurrentPackage(), ast.Unknown)
	}
	node.Params = []dtype.VariantParameter{
		{Name: "l", Type: selfRef()},
		{Name: "r", Type: selfRef()},
	}
	variant.Constructors = []*dtype.VariantConstructorType{leaf, node}
	return w.Declare("Tree", []string{"T"}, variant)
}

// SimpleInterface builds an interface fixture from the given methods,
// e.g. `interface{ f(): void }`.
func SimpleInterface(name string, methods ...*dtype.InterfaceMethod) *dtype.InterfaceType {
	iface := dtype.NewInterface(name, ast.Unknown)
	iface.Methods = methods
	return iface
}

// Method is a convenience constructor for an InterfaceMethod fixture
// with no parameters.
func Method(name string, returnType dtype.DataType) *dtype.InterfaceMethod {
	return &dtype.InterfaceMethod{
		Name:      name,
		Signature: dtype.NewFunction(nil, returnType, ast.Unknown),
	}
}

// MethodWithParams is Method plus a parameter list.
func MethodWithParams(name string, params []dtype.FunctionArgument, returnType dtype.DataType) *dtype.InterfaceMethod {
	return &dtype.InterfaceMethod{
		Name:      name,
		Signature: dtype.NewFunction(params, returnType, ast.Unknown),
	}
}
