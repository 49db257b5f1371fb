package dtype

import (
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// GenericType is a bare generic parameter (e.g. the `T` in
// `class Box<T>`). It only ever appears inside a declaration's own
// body, where instantiation (cache.DeclaredType.Instantiate, through
// Clone below) substitutes it away before resolution runs on the
// instantiated copy; one reaching Resolve unsubstituted
// means instantiation was skipped, which is an UnresolvedGeneric error
// (spec §3.2, §4.5).
type GenericType struct {
	base
	Name       string
	Constraint DataType
}

func NewGeneric(name string, constraint DataType, span ast.Span) *GenericType {
	return &GenericType{base: base{span: span}, Name: name, Constraint: constraint}
}

func (t *GenericType) Kind() Kind { return KindGeneric }

func (t *GenericType) Resolve(ctx Context) error {
	return ctx.Errors().Raise(errors.New(errors.TYP004, "generic parameter "+t.Name+" was not substituted before resolution", t.span))
}

func (t *GenericType) Shortname() string { return t.Name }

func (t *GenericType) Serialize(unpack bool) string { return "generic:" + t.Name }

func (t *GenericType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

// Clone is where a GenericType actually gets eliminated: if subst
// binds this parameter's name, the bound concrete type is returned in
// its place; otherwise the parameter survives unchanged (used while
// cloning a still-generic declaration body, e.g. for re-substitution
// later with different arguments).
func (t *GenericType) Clone(subst Substitution) DataType {
	if bound, ok := subst[t.Name]; ok {
		return bound
	}
	return &GenericType{base: base{span: t.span, declCtx: t.declCtx}, Name: t.Name, Constraint: t.Constraint}
}

func (t *GenericType) Is(ctx Context, k Kind) bool            { return k == KindGeneric }
func (t *GenericType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *GenericType) AllowedNullable(ctx Context) bool       { return false }

// NamespaceType denotes a module/package namespace encountered mid-path
// during reference resolution (spec §4.3 step 2's "unwrap through
// namespaces"). It is a Symbol, not a value type; resolving one
// directly is a host error since the parser should never emit a bare
// namespace in type-annotation position.
type NamespaceType struct {
	base
	Path string
}

func NewNamespace(path string, span ast.Span) *NamespaceType {
	return &NamespaceType{base: base{span: span}, Path: path}
}

func (t *NamespaceType) SymbolKind() SymbolKind { return SymbolNamespace }

func (t *NamespaceType) Kind() Kind { return KindNamespace }

func (t *NamespaceType) Resolve(ctx Context) error {
	return ctx.Errors().Raise(errors.New(errors.TYP001, "namespace "+t.Path+" used where a type was expected", t.span))
}

func (t *NamespaceType) Shortname() string { return lastSegment(t.Path) }

func (t *NamespaceType) Serialize(unpack bool) string { return "namespace:" + t.Path }

func (t *NamespaceType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *NamespaceType) Clone(subst Substitution) DataType { return t }

func (t *NamespaceType) Is(ctx Context, k Kind) bool            { return k == KindNamespace }
func (t *NamespaceType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *NamespaceType) AllowedNullable(ctx Context) bool       { return false }

// FFINamespaceType is the foreign-function-interface counterpart of
// NamespaceType: a path that resolves to a set of FFIMethodType
// members rather than ordinary declared types.
type FFINamespaceType struct {
	base
	Path string
}

func NewFFINamespace(path string, span ast.Span) *FFINamespaceType {
	return &FFINamespaceType{base: base{span: span}, Path: path}
}

func (t *FFINamespaceType) SymbolKind() SymbolKind { return SymbolNamespace }

func (t *FFINamespaceType) Kind() Kind { return KindFFINamespace }

func (t *FFINamespaceType) Resolve(ctx Context) error {
	return ctx.Errors().Raise(errors.New(errors.TYP001, "ffi namespace "+t.Path+" used where a type was expected", t.span))
}

func (t *FFINamespaceType) Shortname() string { return lastSegment(t.Path) }

func (t *FFINamespaceType) Serialize(unpack bool) string { return "ffinamespace:" + t.Path }

func (t *FFINamespaceType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *FFINamespaceType) Clone(subst Substitution) DataType { return t }

func (t *FFINamespaceType) Is(ctx Context, k Kind) bool            { return k == KindFFINamespace }
func (t *FFINamespaceType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *FFINamespaceType) AllowedNullable(ctx Context) bool       { return false }
