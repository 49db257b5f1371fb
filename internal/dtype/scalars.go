package dtype

import (
	"fmt"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// BasicType covers the unsigned/signed integer and float scalar
// kinds, plus Bool, Null, Void and Unreachable — every DataType whose
// entire identity is its Kind (spec §3.1 "Scalars", "Constants and
// scalars are singletons except for source-location distinction").
type BasicType struct {
	base
	kind Kind
}

// NewBasic constructs a scalar of the given kind at span. k must be
// one of the Kind* scalar constants (KindU8..KindF64, KindBool,
// KindNull, KindVoid, KindUnreachable).
func NewBasic(k Kind, span ast.Span) *BasicType {
	return &BasicType{base: base{span: span}, kind: k}
}

func (t *BasicType) Kind() Kind { return t.kind }

func (t *BasicType) Resolve(ctx Context) error { return nil }

func (t *BasicType) Shortname() string { return t.kind.String() }

func (t *BasicType) Serialize(unpack bool) string { return t.kind.String() }

func (t *BasicType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *BasicType) Clone(subst Substitution) DataType {
	return &BasicType{base: base{span: t.span, declCtx: t.declCtx}, kind: t.kind}
}

func (t *BasicType) Is(ctx Context, k Kind) bool {
	return isKind(ctx, t, k)
}

func (t *BasicType) To(ctx Context, k Kind) (DataType, bool) {
	return toKind(ctx, t, k)
}

func (t *BasicType) AllowedNullable(ctx Context) bool {
	// Basic scalars, booleans, and void are not nullable-admitting
	// (spec §4.1).
	return false
}

// LiteralIntType represents an integer literal's type before it has
// been defaulted to a concrete basic type. It carries a byte-size
// hint, which the matcher reads only when
// config.EngineConfig.LiteralIntRangeCheck is enabled (spec §9's open
// question, exposed as a knob rather than silently ignored or silently
// enforced).
type LiteralIntType struct {
	base
	ByteSizeHint int
}

func NewLiteralInt(byteSizeHint int, span ast.Span) *LiteralIntType {
	return &LiteralIntType{base: base{span: span}, ByteSizeHint: byteSizeHint}
}

func (t *LiteralIntType) Kind() Kind            { return KindLiteralInt }
func (t *LiteralIntType) Resolve(ctx Context) error { return nil }
func (t *LiteralIntType) Shortname() string     { return "literal int" }

func (t *LiteralIntType) Serialize(unpack bool) string {
	return fmt.Sprintf("literal_int(%d)", t.ByteSizeHint)
}

func (t *LiteralIntType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *LiteralIntType) Clone(subst Substitution) DataType {
	return &LiteralIntType{base: base{span: t.span, declCtx: t.declCtx}, ByteSizeHint: t.ByteSizeHint}
}

func (t *LiteralIntType) Is(ctx Context, k Kind) bool          { return isKind(ctx, t, k) }
func (t *LiteralIntType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *LiteralIntType) AllowedNullable(ctx Context) bool     { return false }

// StringEnumType represents a closed set of string literal values
// used as a type (spec §3.1 "Pending" — string enums are resolved
// structurally but never instantiated via the generic-instantiation
// cache, hence "pending" alongside Unset/Generic/Namespace).
type StringEnumType struct {
	base
	Values []string
}

func NewStringEnum(values []string, span ast.Span) *StringEnumType {
	return &StringEnumType{base: base{span: span}, Values: append([]string(nil), values...)}
}

func (t *StringEnumType) Kind() Kind { return KindStringEnum }

func (t *StringEnumType) Resolve(ctx Context) error { return nil }

func (t *StringEnumType) Shortname() string { return "string enum" }

func (t *StringEnumType) Serialize(unpack bool) string {
	s := "stringenum("
	for i, v := range t.Values {
		if i > 0 {
			s += ","
		}
		s += v
	}
	return s + ")"
}

func (t *StringEnumType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *StringEnumType) Clone(subst Substitution) DataType {
	return &StringEnumType{base: base{span: t.span, declCtx: t.declCtx}, Values: append([]string(nil), t.Values...)}
}

func (t *StringEnumType) Is(ctx Context, k Kind) bool          { return isKind(ctx, t, k) }
func (t *StringEnumType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *StringEnumType) AllowedNullable(ctx Context) bool     { return false }

// UnsetType is the placeholder type assigned before inference fills a
// slot in (function return types awaiting a sink, mostly). Resolving
// an Unset outside that one sanctioned use is an error (spec §3.2).
type UnsetType struct {
	base
	// InferenceSink marks this Unset as a function-return inference
	// sink, the one context in which resolving it is legal.
	InferenceSink bool
}

func NewUnset(span ast.Span) *UnsetType { return &UnsetType{base: base{span: span}} }

func (t *UnsetType) Kind() Kind { return KindUnset }

func (t *UnsetType) Resolve(ctx Context) error {
	if t.InferenceSink {
		return nil
	}
	return ctx.Errors().Raise(errors.New(errors.TYP005, "cannot resolve Unset outside a function-return inference sink", t.span))
}

func (t *UnsetType) Shortname() string { return "<unset>" }

func (t *UnsetType) Serialize(unpack bool) string { return "<unset>" }

func (t *UnsetType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *UnsetType) Clone(subst Substitution) DataType {
	return &UnsetType{base: base{span: t.span, declCtx: t.declCtx}, InferenceSink: t.InferenceSink}
}

func (t *UnsetType) Is(ctx Context, k Kind) bool          { return k == KindUnset }
func (t *UnsetType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *UnsetType) AllowedNullable(ctx Context) bool     { return false }
