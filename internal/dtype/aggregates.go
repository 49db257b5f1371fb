package dtype

import (
	"fmt"
	"strings"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// ArrayType is a homogeneous array of Elem.
type ArrayType struct {
	base
	Elem DataType
}

func NewArray(elem DataType, span ast.Span) *ArrayType {
	return &ArrayType{base: base{span: span}, Elem: elem}
}

func (t *ArrayType) Kind() Kind { return KindArray }

func (t *ArrayType) Resolve(ctx Context) error { return t.Elem.Resolve(ctx) }

func (t *ArrayType) Shortname() string { return t.Elem.Shortname() + "[]" }

func (t *ArrayType) Serialize(unpack bool) string {
	return t.Elem.Serialize(unpack) + "[]"
}

func (t *ArrayType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *ArrayType) Clone(subst Substitution) DataType {
	return &ArrayType{base: base{span: t.span, declCtx: t.declCtx}, Elem: t.Elem.Clone(subst)}
}

func (t *ArrayType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *ArrayType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *ArrayType) AllowedNullable(ctx Context) bool       { return true }

// TupleType is a fixed heterogeneous sequence of at least two
// elements (spec §3.2 "Tuple arity").
type TupleType struct {
	base
	Elems []DataType
}

// NewTuple constructs a tuple. Per spec §3.2, callers must supply at
// least two elements; NewTuple does not check this itself, and a
// shorter tuple is only rejected when Resolve runs (see below).
func NewTuple(elems []DataType, span ast.Span) *TupleType {
	return &TupleType{base: base{span: span}, Elems: elems}
}

func (t *TupleType) Kind() Kind { return KindTuple }

func (t *TupleType) Resolve(ctx Context) error {
	if len(t.Elems) < 2 {
		return ctx.Errors().Raise(errors.New(errors.TYP006, "tuple must have at least two elements", t.span))
	}
	for _, e := range t.Elems {
		if err := e.Resolve(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *TupleType) Shortname() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.Shortname()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *TupleType) Serialize(unpack bool) string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.Serialize(unpack)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *TupleType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *TupleType) Clone(subst Substitution) DataType {
	elems := make([]DataType, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.Clone(subst)
	}
	return &TupleType{base: base{span: t.span, declCtx: t.declCtx}, Elems: elems}
}

func (t *TupleType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *TupleType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }

// AllowedNullable is false for tuples (spec §4.1 explicitly calls
// this out as the one aggregate exception).
func (t *TupleType) AllowedNullable(ctx Context) bool { return false }

// StructType is an ordered set of named fields.
type StructType struct {
	base
	Fields []StructField
}

func NewStruct(fields []StructField, span ast.Span) *StructType {
	return &StructType{base: base{span: span}, Fields: fields}
}

func (t *StructType) Kind() Kind { return KindStruct }

func (t *StructType) Resolve(ctx Context) error {
	for _, f := range t.Fields {
		if err := f.Type.Resolve(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *StructType) Shortname() string { return "struct" }

func (t *StructType) Serialize(unpack bool) string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.serialize(unpack)
	}
	return "struct{" + strings.Join(parts, ", ") + "}"
}

func (t *StructType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *StructType) Clone(subst Substitution) DataType {
	fields := make([]StructField, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = f.clone(subst)
	}
	return &StructType{base: base{span: t.span, declCtx: t.declCtx}, Fields: fields}
}

func (t *StructType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *StructType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *StructType) AllowedNullable(ctx Context) bool       { return true }

// Field looks up a field by name.
func (t *StructType) Field(name string) (StructField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructField{}, false
}

// EnumType is an ordered set of named, integer-valued fields.
type EnumType struct {
	base
	Fields []EnumField
}

// EnumField is one named, integer-valued member of an EnumType.
type EnumField struct {
	Name  string
	Value int64
}

func NewEnum(fields []EnumField, span ast.Span) *EnumType {
	return &EnumType{base: base{span: span}, Fields: fields}
}

func (t *EnumType) Kind() Kind { return KindEnum }

func (t *EnumType) Resolve(ctx Context) error { return nil }

func (t *EnumType) Shortname() string { return "enum" }

func (t *EnumType) Serialize(unpack bool) string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = fmt.Sprintf("%s=%d", f.Name, f.Value)
	}
	return "enum{" + strings.Join(parts, ", ") + "}"
}

func (t *EnumType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *EnumType) Clone(subst Substitution) DataType {
	fields := append([]EnumField(nil), t.Fields...)
	return &EnumType{base: base{span: t.span, declCtx: t.declCtx}, Fields: fields}
}

func (t *EnumType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *EnumType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }

// AllowedNullable checks kind per spec §4.1 ("enums (check kind)") —
// enums are not nullable-admitting (StringEnumType, a distinct Kind,
// answers for itself and also returns false).
func (t *EnumType) AllowedNullable(ctx Context) bool { return false }
