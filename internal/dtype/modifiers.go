package dtype

import (
	"strings"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// NullableType wraps a type that may additionally hold Null. Double
// wrapping is rejected at resolve time rather than at construction,
// since a generic instantiation can produce a nested Nullable without
// the constructing code itself writing `Nullable(Nullable(...))`
// (spec §3.2 "disallow double-wrap").
type NullableType struct {
	base
	Inner DataType
}

func NewNullable(inner DataType, span ast.Span) *NullableType {
	return &NullableType{base: base{span: span}, Inner: inner}
}

func (t *NullableType) Kind() Kind { return KindNullable }

func (t *NullableType) Resolve(ctx Context) error {
	if err := t.Inner.Resolve(ctx); err != nil {
		return err
	}
	if t.Inner.Kind() == KindNullable {
		return ctx.Errors().Raise(errors.New(errors.TYP006, "nullable cannot wrap another nullable", t.span))
	}
	if !t.Inner.AllowedNullable(ctx) {
		return ctx.Errors().Raise(errors.New(errors.TYP010, "type is not allowed to be nullable", t.span))
	}
	return nil
}

func (t *NullableType) Shortname() string { return t.Inner.Shortname() + "?" }

func (t *NullableType) Serialize(unpack bool) string { return t.Inner.Serialize(unpack) + "?" }

func (t *NullableType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *NullableType) Clone(subst Substitution) DataType {
	return &NullableType{base: base{span: t.span, declCtx: t.declCtx}, Inner: t.Inner.Clone(subst)}
}

func (t *NullableType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *NullableType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }

// AllowedNullable is false: Nullable(Nullable(x)) is always rejected,
// never silently collapsed (spec §3.2).
func (t *NullableType) AllowedNullable(ctx Context) bool { return false }

// ReferenceType is a named, possibly generic-instantiated reference to
// a declared type, resolved through Context.ResolveReference (spec
// §4.3). Before Resolve runs, Path/TypeArgs are all that exist; after,
// resolvedBase holds the dereferenced DataType.
type ReferenceType struct {
	base
	Path        string
	TypeArgs    []DataType
	UsageCtx    PackageID
	resolved    DataType
	hasResolved bool
}

func NewReference(path string, typeArgs []DataType, usageCtx PackageID, span ast.Span) *ReferenceType {
	return &ReferenceType{base: base{span: span}, Path: path, TypeArgs: typeArgs, UsageCtx: usageCtx}
}

func (t *ReferenceType) Kind() Kind { return KindReference }

func (t *ReferenceType) Resolve(ctx Context) error {
	h := t.Hash()
	if ctx.ResolveGuard().Enter(h) {
		return nil
	}
	defer ctx.ResolveGuard().Exit(h)
	for _, a := range t.TypeArgs {
		if err := a.Resolve(ctx); err != nil {
			return err
		}
	}
	resolved, err := ctx.ResolveReference(t)
	if err != nil {
		return err
	}
	t.resolved = resolved
	t.hasResolved = true
	t.setOriginal(resolved)
	return nil
}

func (t *ReferenceType) Shortname() string { return lastSegment(t.Path) }

func (t *ReferenceType) Serialize(unpack bool) string {
	sig := t.Path
	if len(t.TypeArgs) > 0 {
		parts := make([]string, len(t.TypeArgs))
		for i, a := range t.TypeArgs {
			parts[i] = a.Serialize(false)
		}
		sig += "<" + strings.Join(parts, ", ") + ">"
	}
	if unpack && t.hasResolved {
		return t.resolved.Serialize(true)
	}
	return "ref:" + sig
}

func (t *ReferenceType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

// Clone substitutes a generic-parameter reference directly: per spec
// §3.3, a Reference whose Path's first segment names a bound
// type-variable resolves to the bound concrete type rather than
// cloning into a new Reference.
func (t *ReferenceType) Clone(subst Substitution) DataType {
	first := t.Path
	if i := strings.IndexByte(first, '.'); i >= 0 {
		first = first[:i]
	}
	if bound, ok := subst[first]; ok {
		return bound
	}
	args := make([]DataType, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		args[i] = a.Clone(subst)
	}
	return &ReferenceType{base: base{span: t.span, declCtx: t.declCtx}, Path: t.Path, TypeArgs: args, UsageCtx: t.UsageCtx}
}

func (t *ReferenceType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *ReferenceType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }

func (t *ReferenceType) AllowedNullable(ctx Context) bool {
	if t.hasResolved {
		return t.resolved.AllowedNullable(ctx)
	}
	return true
}

// resolvedBase exposes the cached post-Resolve dereference to the
// shared isKind/toKind downcast helpers.
func (t *ReferenceType) resolvedBase() (DataType, bool) { return t.resolved, t.hasResolved }

// ResolvedBase exposes the cached post-Resolve dereference to callers
// outside this package (internal/match and internal/generics both
// need to see straight through a Reference before applying their own
// structural rules).
func (t *ReferenceType) ResolvedBase() (DataType, bool) { return t.resolvedBase() }

// PartialStructType marks every field of Inner as optional (spec
// §3.1 "modifiers" — used for partial object literals / patch
// payloads).
type PartialStructType struct {
	base
	Inner *StructType
}

func NewPartialStruct(inner *StructType, span ast.Span) *PartialStructType {
	return &PartialStructType{base: base{span: span}, Inner: inner}
}

func (t *PartialStructType) Kind() Kind { return KindPartialStruct }

func (t *PartialStructType) Resolve(ctx Context) error { return t.Inner.Resolve(ctx) }

func (t *PartialStructType) Shortname() string { return "partial<" + t.Inner.Shortname() + ">" }

func (t *PartialStructType) Serialize(unpack bool) string {
	return "partial<" + t.Inner.Serialize(unpack) + ">"
}

func (t *PartialStructType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *PartialStructType) Clone(subst Substitution) DataType {
	inner := t.Inner.Clone(subst).(*StructType)
	return &PartialStructType{base: base{span: t.span, declCtx: t.declCtx}, Inner: inner}
}

func (t *PartialStructType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *PartialStructType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *PartialStructType) AllowedNullable(ctx Context) bool       { return true }

// LockType guards a function-like type behind mutual-exclusion
// semantics. Its one resolve-time invariant (spec §3.2): the guarded
// function's return type may not be an Unset that isn't itself an
// inference sink, since a lock's call site has no surrounding
// expression context to drive inference.
type LockType struct {
	base
	Inner DataType
}

func NewLock(inner DataType, span ast.Span) *LockType {
	return &LockType{base: base{span: span}, Inner: inner}
}

func (t *LockType) Kind() Kind { return KindLock }

func (t *LockType) Resolve(ctx Context) error {
	if err := t.Inner.Resolve(ctx); err != nil {
		return err
	}
	var ret DataType
	switch fn := t.Inner.(type) {
	case *FunctionType:
		ret = fn.ReturnType
	case *CoroutineType:
		ret = fn.Inner.ReturnType
	}
	if u, ok := ret.(*UnsetType); ok && !u.InferenceSink {
		return ctx.Errors().Raise(errors.New(errors.TYP005, "locked function's return type cannot be unset", t.span))
	}
	return nil
}

func (t *LockType) Shortname() string { return "lock<" + t.Inner.Shortname() + ">" }

func (t *LockType) Serialize(unpack bool) string { return "lock<" + t.Inner.Serialize(unpack) + ">" }

func (t *LockType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *LockType) Clone(subst Substitution) DataType {
	return &LockType{base: base{span: t.span, declCtx: t.declCtx}, Inner: t.Inner.Clone(subst)}
}

func (t *LockType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *LockType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *LockType) AllowedNullable(ctx Context) bool       { return true }
