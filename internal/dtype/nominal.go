package dtype

import (
	"strings"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
)

// Nominal types (Class, Interface, Variant, VariantConstructor) are
// identified by declared path rather than structural expansion (spec
// §3.1 "Nominal refs"): two classes with identical attributes and
// methods but different names have distinct Hash and Serialize
// identities (internal/match still compares classes structurally).
// Serialize therefore emits the path alone when unpack is false;
// passing unpack=true additionally expands a class's attributes, an
// interface's methods or a constructor's parameters, used by
// diagnostics that want to show a shape rather than just a name.
// VariantType.Serialize emits the path alone in both modes.

// ClassType is a nominal type with attributes, methods, and zero or
// more super-interfaces/super-classes.
type ClassType struct {
	base
	Path       string
	Attributes []StructField
	Methods    []*InterfaceMethod
	Supers     []DataType
}

func NewClass(path string, span ast.Span) *ClassType {
	return &ClassType{base: base{span: span}, Path: path}
}

func (t *ClassType) Kind() Kind { return KindClass }

func (t *ClassType) Resolve(ctx Context) error {
	h := t.Hash()
	if ctx.ResolveGuard().Enter(h) {
		return nil
	}
	defer ctx.ResolveGuard().Exit(h)
	for _, a := range t.Attributes {
		if err := a.Type.Resolve(ctx); err != nil {
			return err
		}
	}
	for _, m := range t.Methods {
		if err := m.Signature.Resolve(ctx); err != nil {
			return err
		}
	}
	for _, s := range t.Supers {
		if err := s.Resolve(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *ClassType) Shortname() string { return lastSegment(t.Path) }

func (t *ClassType) Serialize(unpack bool) string {
	if !unpack {
		return "class:" + t.Path
	}
	var b strings.Builder
	b.WriteString("class:")
	b.WriteString(t.Path)
	b.WriteString("{")
	for i, a := range t.Attributes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.serialize(true))
	}
	b.WriteString("}")
	return b.String()
}

func (t *ClassType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString("class:" + t.Path) })
	return t.hashVal
}

// Clone substitutes generic parameters through a class's attributes,
// methods, and supers while keeping its nominal Path (and therefore
// its Hash/Serialize identity) unchanged — instantiating `Box<T>` with
// `u32` produces a distinct attribute/method shape but is still, by
// name, a `Box`.
func (t *ClassType) Clone(subst Substitution) DataType {
	if len(subst) == 0 {
		return t
	}
	attrs := make([]StructField, len(t.Attributes))
	for i, a := range t.Attributes {
		attrs[i] = a.clone(subst)
	}
	methods := make([]*InterfaceMethod, len(t.Methods))
	for i, m := range t.Methods {
		methods[i] = m.clone(subst)
	}
	supers := make([]DataType, len(t.Supers))
	for i, s := range t.Supers {
		supers[i] = s.Clone(subst)
	}
	return &ClassType{base: base{span: t.span, declCtx: t.declCtx}, Path: t.Path, Attributes: attrs, Methods: methods, Supers: supers}
}

func (t *ClassType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *ClassType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *ClassType) AllowedNullable(ctx Context) bool       { return true }

// Method looks up the first method with the given name.
func (t *ClassType) Method(name string) (*InterfaceMethod, bool) {
	for _, m := range t.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Field looks up an attribute by name (spec §4.4's Class structural
// comparison: attributes matched by name, same as a struct field).
func (t *ClassType) Field(name string) (StructField, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return StructField{}, false
}

// InterfaceType is a nominal contract: a set of method signatures plus
// zero or more extended interfaces.
type InterfaceType struct {
	base
	Path    string
	Methods []*InterfaceMethod
	Supers  []DataType
}

func NewInterface(path string, span ast.Span) *InterfaceType {
	return &InterfaceType{base: base{span: span}, Path: path}
}

func (t *InterfaceType) Kind() Kind { return KindInterface }

func (t *InterfaceType) Resolve(ctx Context) error {
	h := t.Hash()
	if ctx.ResolveGuard().Enter(h) {
		return nil
	}
	defer ctx.ResolveGuard().Exit(h)
	for _, m := range t.Methods {
		if err := m.Signature.Resolve(ctx); err != nil {
			return err
		}
	}
	for _, s := range t.Supers {
		if err := s.Resolve(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *InterfaceType) Shortname() string { return lastSegment(t.Path) }

func (t *InterfaceType) Serialize(unpack bool) string {
	if !unpack {
		return "interface:" + t.Path
	}
	var b strings.Builder
	b.WriteString("interface:")
	b.WriteString(t.Path)
	b.WriteString("{")
	for i, m := range t.Methods {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.serialize(true))
	}
	b.WriteString("}")
	return b.String()
}

func (t *InterfaceType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString("interface:" + t.Path) })
	return t.hashVal
}

// Clone substitutes generic parameters through an interface's methods
// and supers, same rationale as ClassType.Clone.
func (t *InterfaceType) Clone(subst Substitution) DataType {
	if len(subst) == 0 {
		return t
	}
	methods := make([]*InterfaceMethod, len(t.Methods))
	for i, m := range t.Methods {
		methods[i] = m.clone(subst)
	}
	supers := make([]DataType, len(t.Supers))
	for i, s := range t.Supers {
		supers[i] = s.Clone(subst)
	}
	return &InterfaceType{base: base{span: t.span, declCtx: t.declCtx}, Path: t.Path, Methods: methods, Supers: supers}
}

func (t *InterfaceType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *InterfaceType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *InterfaceType) AllowedNullable(ctx Context) bool       { return true }

// Method looks up the first method with the given name.
func (t *InterfaceType) Method(name string) (*InterfaceMethod, bool) {
	for _, m := range t.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// AllMethods flattens this interface's own methods and those of every
// super-interface (spec §4.4's Interface width-subtyping rule walks
// this transitively).
func (t *InterfaceType) AllMethods() []*InterfaceMethod {
	methods := append([]*InterfaceMethod(nil), t.Methods...)
	for _, s := range t.Supers {
		if si, ok := s.(*InterfaceType); ok {
			methods = append(methods, si.AllMethods()...)
		}
	}
	return methods
}

// VariantType is a closed, ordered set of named constructors (a sum
// type, spec §3.1).
type VariantType struct {
	base
	Path         string
	Constructors []*VariantConstructorType
}

func NewVariant(path string, span ast.Span) *VariantType {
	return &VariantType{base: base{span: span}, Path: path}
}

func (t *VariantType) Kind() Kind { return KindVariant }

func (t *VariantType) Resolve(ctx Context) error {
	h := t.Hash()
	if ctx.ResolveGuard().Enter(h) {
		return nil
	}
	defer ctx.ResolveGuard().Exit(h)
	for _, c := range t.Constructors {
		if err := c.Resolve(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *VariantType) Shortname() string { return lastSegment(t.Path) }

func (t *VariantType) Serialize(unpack bool) string { return "variant:" + t.Path }

func (t *VariantType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString("variant:" + t.Path) })
	return t.hashVal
}

// Clone substitutes generic parameters through every constructor,
// rebuilding the Parent back-pointers so the cloned constructors
// belong to the cloned variant rather than the still-generic original
// (spec §4.4's variant/constructor subsumption rule compares Parent by
// identity, so a stale pointer would silently break it).
func (t *VariantType) Clone(subst Substitution) DataType {
	if len(subst) == 0 {
		return t
	}
	clone := &VariantType{base: base{span: t.span, declCtx: t.declCtx}, Path: t.Path}
	clone.Constructors = make([]*VariantConstructorType, len(t.Constructors))
	for i, c := range t.Constructors {
		cc := c.Clone(subst).(*VariantConstructorType)
		cc.Parent = clone
		clone.Constructors[i] = cc
	}
	return clone
}

func (t *VariantType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *VariantType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *VariantType) AllowedNullable(ctx Context) bool       { return true }

// Constructor looks up a constructor by name.
func (t *VariantType) Constructor(name string) (*VariantConstructorType, bool) {
	for _, c := range t.Constructors {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// VariantConstructorType is one labeled case of a VariantType, with
// its own parameter list and a stable tag-id used for pattern-match
// dispatch (assigned by the constructor's position within its
// parent's Constructors slice, spec §3.1).
type VariantConstructorType struct {
	base
	Name   string
	Params []VariantParameter
	Parent *VariantType
	TagID  uint32
}

func NewVariantConstructor(name string, span ast.Span) *VariantConstructorType {
	return &VariantConstructorType{base: base{span: span}, Name: name}
}

func (t *VariantConstructorType) Kind() Kind { return KindVariantConstructor }

func (t *VariantConstructorType) Resolve(ctx Context) error {
	for _, p := range t.Params {
		if err := p.Type.Resolve(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *VariantConstructorType) Shortname() string {
	if t.Parent != nil {
		return t.Parent.Shortname() + "." + t.Name
	}
	return t.Name
}

func (t *VariantConstructorType) Serialize(unpack bool) string {
	path := t.Name
	if t.Parent != nil {
		path = t.Parent.Path + "." + t.Name
	}
	if !unpack {
		return "variantctor:" + path
	}
	var b strings.Builder
	b.WriteString("variantctor:")
	b.WriteString(path)
	b.WriteString("(")
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.serialize(true))
	}
	b.WriteString(")")
	return b.String()
}

func (t *VariantConstructorType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

// Clone substitutes generic parameters through the constructor's
// parameter list. Parent is left nil here; VariantType.Clone (the only
// caller that matters, since a constructor never appears ungrounded
// outside its parent's Constructors slice) fixes it up to point at the
// freshly cloned variant.
func (t *VariantConstructorType) Clone(subst Substitution) DataType {
	if len(subst) == 0 {
		return t
	}
	params := make([]VariantParameter, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.clone(subst)
	}
	return &VariantConstructorType{base: base{span: t.span, declCtx: t.declCtx}, Name: t.Name, Params: params, TagID: t.TagID}
}

func (t *VariantConstructorType) Is(ctx Context, k Kind) bool { return isKind(ctx, t, k) }
func (t *VariantConstructorType) To(ctx Context, k Kind) (DataType, bool) {
	return toKind(ctx, t, k)
}

// AllowedNullable is true: a constructor value can be null like any
// other nominal reference (spec §4.1).
func (t *VariantConstructorType) AllowedNullable(ctx Context) bool { return true }

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
