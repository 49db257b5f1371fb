package dtype

import (
	"strings"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
)

// FunctionType is an ordered parameter list plus a return type. Two
// function types are structurally identical only if their parameter
// types, mutability flags, and return type all match in order (spec
// §3.1); parameter names do not participate in identity, only in
// Serialize's human-readable rendering.
type FunctionType struct {
	base
	Params     []FunctionArgument
	ReturnType DataType
}

func NewFunction(params []FunctionArgument, returnType DataType, span ast.Span) *FunctionType {
	return &FunctionType{base: base{span: span}, Params: params, ReturnType: returnType}
}

func (t *FunctionType) Kind() Kind { return KindFunction }

func (t *FunctionType) Resolve(ctx Context) error {
	for _, p := range t.Params {
		if err := p.Type.Resolve(ctx); err != nil {
			return err
		}
	}
	return t.ReturnType.Resolve(ctx)
}

func (t *FunctionType) Shortname() string { return "fn" }

func (t *FunctionType) Serialize(unpack bool) string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.serialize(unpack)
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + t.ReturnType.Serialize(unpack)
}

func (t *FunctionType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *FunctionType) Clone(subst Substitution) DataType {
	params := make([]FunctionArgument, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.clone(subst)
	}
	return &FunctionType{base: base{span: t.span, declCtx: t.declCtx}, Params: params, ReturnType: t.ReturnType.Clone(subst)}
}

func (t *FunctionType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *FunctionType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *FunctionType) AllowedNullable(ctx Context) bool       { return true }

// CoroutineType wraps a FunctionType, marking it callable only via the
// coroutine-spawn operator rather than direct invocation (spec §3.1).
type CoroutineType struct {
	base
	Inner *FunctionType
}

func NewCoroutine(inner *FunctionType, span ast.Span) *CoroutineType {
	return &CoroutineType{base: base{span: span}, Inner: inner}
}

func (t *CoroutineType) Kind() Kind { return KindCoroutine }

func (t *CoroutineType) Resolve(ctx Context) error { return t.Inner.Resolve(ctx) }

func (t *CoroutineType) Shortname() string { return "coroutine" }

func (t *CoroutineType) Serialize(unpack bool) string {
	return "coroutine" + t.Inner.Serialize(unpack)
}

func (t *CoroutineType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *CoroutineType) Clone(subst Substitution) DataType {
	inner := t.Inner.Clone(subst).(*FunctionType)
	return &CoroutineType{base: base{span: t.span, declCtx: t.declCtx}, Inner: inner}
}

func (t *CoroutineType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *CoroutineType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *CoroutineType) AllowedNullable(ctx Context) bool       { return true }

// FFIMethodType wraps an InterfaceMethod declared by a foreign
// function interface binding, tagged with the FFI namespace it came
// from for diagnostics (spec §3.1 "function-likes").
type FFIMethodType struct {
	base
	Method   *InterfaceMethod
	ParentFFI string
}

func NewFFIMethod(method *InterfaceMethod, parentFFI string, span ast.Span) *FFIMethodType {
	return &FFIMethodType{base: base{span: span}, Method: method, ParentFFI: parentFFI}
}

func (t *FFIMethodType) Kind() Kind { return KindFFIMethod }

func (t *FFIMethodType) Resolve(ctx Context) error { return t.Method.Signature.Resolve(ctx) }

func (t *FFIMethodType) Shortname() string { return t.ParentFFI + "." + t.Method.Name }

func (t *FFIMethodType) Serialize(unpack bool) string {
	return "ffi:" + t.ParentFFI + "." + t.Method.serialize(unpack)
}

func (t *FFIMethodType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *FFIMethodType) Clone(subst Substitution) DataType {
	return &FFIMethodType{base: base{span: t.span, declCtx: t.declCtx}, Method: t.Method.clone(subst), ParentFFI: t.ParentFFI}
}

func (t *FFIMethodType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *FFIMethodType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *FFIMethodType) AllowedNullable(ctx Context) bool       { return false }
