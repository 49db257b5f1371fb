package dtype

import "github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"

// Meta types are the "type of a type" — what a class, interface,
// variant, variant constructor, or enum evaluates to when referenced
// as a value rather than used as a type annotation (spec §3.1
// "Metatypes"), e.g. a static-method receiver or a constructor used as
// a first-class function. Each simply wraps the nominal type it
// describes; identity and resolution both defer to the wrapped type.

type MetaClassType struct {
	base
	Of *ClassType
}

func NewMetaClass(of *ClassType, span ast.Span) *MetaClassType {
	return &MetaClassType{base: base{span: span}, Of: of}
}

func (t *MetaClassType) Kind() Kind                 { return KindMetaClass }
func (t *MetaClassType) Resolve(ctx Context) error  { return t.Of.Resolve(ctx) }
func (t *MetaClassType) Shortname() string          { return "meta<" + t.Of.Shortname() + ">" }
func (t *MetaClassType) Serialize(unpack bool) string {
	return "meta:" + t.Of.Serialize(unpack)
}
func (t *MetaClassType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}
func (t *MetaClassType) Clone(subst Substitution) DataType {
	return &MetaClassType{base: base{span: t.span, declCtx: t.declCtx}, Of: t.Of.Clone(subst).(*ClassType)}
}
func (t *MetaClassType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *MetaClassType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *MetaClassType) AllowedNullable(ctx Context) bool       { return false }

type MetaInterfaceType struct {
	base
	Of *InterfaceType
}

func NewMetaInterface(of *InterfaceType, span ast.Span) *MetaInterfaceType {
	return &MetaInterfaceType{base: base{span: span}, Of: of}
}

func (t *MetaInterfaceType) Kind() Kind                 { return KindMetaInterface }
func (t *MetaInterfaceType) Resolve(ctx Context) error  { return t.Of.Resolve(ctx) }
func (t *MetaInterfaceType) Shortname() string          { return "meta<" + t.Of.Shortname() + ">" }
func (t *MetaInterfaceType) Serialize(unpack bool) string {
	return "meta:" + t.Of.Serialize(unpack)
}
func (t *MetaInterfaceType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}
func (t *MetaInterfaceType) Clone(subst Substitution) DataType {
	return &MetaInterfaceType{base: base{span: t.span, declCtx: t.declCtx}, Of: t.Of.Clone(subst).(*InterfaceType)}
}
func (t *MetaInterfaceType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *MetaInterfaceType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *MetaInterfaceType) AllowedNullable(ctx Context) bool       { return false }

type MetaVariantType struct {
	base
	Of *VariantType
}

func NewMetaVariant(of *VariantType, span ast.Span) *MetaVariantType {
	return &MetaVariantType{base: base{span: span}, Of: of}
}

func (t *MetaVariantType) Kind() Kind                 { return KindMetaVariant }
func (t *MetaVariantType) Resolve(ctx Context) error  { return t.Of.Resolve(ctx) }
func (t *MetaVariantType) Shortname() string          { return "meta<" + t.Of.Shortname() + ">" }
func (t *MetaVariantType) Serialize(unpack bool) string {
	return "meta:" + t.Of.Serialize(unpack)
}
func (t *MetaVariantType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}
func (t *MetaVariantType) Clone(subst Substitution) DataType {
	return &MetaVariantType{base: base{span: t.span, declCtx: t.declCtx}, Of: t.Of.Clone(subst).(*VariantType)}
}
func (t *MetaVariantType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *MetaVariantType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *MetaVariantType) AllowedNullable(ctx Context) bool       { return false }

type MetaVariantConstructorType struct {
	base
	Of *VariantConstructorType
}

func NewMetaVariantConstructor(of *VariantConstructorType, span ast.Span) *MetaVariantConstructorType {
	return &MetaVariantConstructorType{base: base{span: span}, Of: of}
}

func (t *MetaVariantConstructorType) Kind() Kind                { return KindMetaVariantConstructor }
func (t *MetaVariantConstructorType) Resolve(ctx Context) error { return t.Of.Resolve(ctx) }
func (t *MetaVariantConstructorType) Shortname() string         { return "meta<" + t.Of.Shortname() + ">" }
func (t *MetaVariantConstructorType) Serialize(unpack bool) string {
	return "meta:" + t.Of.Serialize(unpack)
}
func (t *MetaVariantConstructorType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}
func (t *MetaVariantConstructorType) Clone(subst Substitution) DataType {
	return &MetaVariantConstructorType{base: base{span: t.span, declCtx: t.declCtx}, Of: t.Of.Clone(subst).(*VariantConstructorType)}
}
func (t *MetaVariantConstructorType) Is(ctx Context, k Kind) bool { return isKind(ctx, t, k) }
func (t *MetaVariantConstructorType) To(ctx Context, k Kind) (DataType, bool) {
	return toKind(ctx, t, k)
}
func (t *MetaVariantConstructorType) AllowedNullable(ctx Context) bool { return false }

type MetaEnumType struct {
	base
	Of *EnumType
}

func NewMetaEnum(of *EnumType, span ast.Span) *MetaEnumType {
	return &MetaEnumType{base: base{span: span}, Of: of}
}

func (t *MetaEnumType) Kind() Kind                 { return KindMetaEnum }
func (t *MetaEnumType) Resolve(ctx Context) error  { return t.Of.Resolve(ctx) }
func (t *MetaEnumType) Shortname() string          { return "meta<" + t.Of.Shortname() + ">" }
func (t *MetaEnumType) Serialize(unpack bool) string {
	return "meta:" + t.Of.Serialize(unpack)
}
func (t *MetaEnumType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}
func (t *MetaEnumType) Clone(subst Substitution) DataType {
	return &MetaEnumType{base: base{span: t.span, declCtx: t.declCtx}, Of: t.Of.Clone(subst).(*EnumType)}
}
func (t *MetaEnumType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *MetaEnumType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *MetaEnumType) AllowedNullable(ctx Context) bool       { return false }
