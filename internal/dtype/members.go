package dtype

import "strings"

// FunctionArgument is a single function parameter. Order is
// significant for function identity (spec §3.1).
type FunctionArgument struct {
	Name      string
	Type      DataType
	IsMutable bool
}

func (a FunctionArgument) serialize(unpack bool) string {
	prefix := ""
	if a.IsMutable {
		prefix = "mut "
	}
	return prefix + a.Name + ": " + a.Type.Serialize(unpack)
}

func (a FunctionArgument) clone(subst Substitution) FunctionArgument {
	return FunctionArgument{Name: a.Name, Type: a.Type.Clone(subst), IsMutable: a.IsMutable}
}

// InterfaceMethod is a named method signature. Methods may repeat a
// name with differing parameter types ("overloading", spec §3.1). A
// process-wide UID is assigned lazily by canonical serialization so
// downstream code generation can reference a method compactly.
type InterfaceMethod struct {
	Name      string
	Signature *FunctionType
	IsStatic  bool
	Generics  []string
}

func (m *InterfaceMethod) serialize(unpack bool) string {
	var b strings.Builder
	b.WriteString(m.Name)
	if len(m.Generics) > 0 {
		b.WriteString("<")
		b.WriteString(strings.Join(m.Generics, ", "))
		b.WriteString(">")
	}
	b.WriteString(m.Signature.Serialize(unpack))
	if m.IsStatic {
		b.WriteString(" static")
	}
	return b.String()
}

// UID returns the process-wide, monotonically assigned identifier for
// this method's canonical signature (spec §3.1).
func (m *InterfaceMethod) UID() uint32 {
	return methodUID(m.serialize(false))
}

func (m *InterfaceMethod) clone(subst Substitution) *InterfaceMethod {
	sig := m.Signature.Clone(subst).(*FunctionType)
	generics := append([]string(nil), m.Generics...)
	return &InterfaceMethod{Name: m.Name, Signature: sig, IsStatic: m.IsStatic, Generics: generics}
}

// sameParamShape reports whether two methods have structurally
// identical parameter-type lists, ignoring return type and mutability
// (the comparison spec §3.2's interface method uniqueness rule is
// phrased in). Nothing in this module calls it: InterfaceType.Resolve
// does not check method uniqueness, and the Class rule in
// internal/match compares parameters by Hash in its own helper.
func sameParamShape(ctx Context, a, b *InterfaceMethod) bool {
	if len(a.Signature.Params) != len(b.Signature.Params) {
		return false
	}
	for i := range a.Signature.Params {
		pa, pb := a.Signature.Params[i], b.Signature.Params[i]
		if identicalShallow(ctx, pa.Type, pb.Type) != Ok() {
			return false
		}
	}
	return true
}

// identicalShallow compares two types by Hash and Serialize(false)
// only, without going through internal/match (a higher-level package
// that depends on dtype, not the reverse). Its only caller is
// sameParamShape.
func identicalShallow(ctx Context, a, b DataType) Result {
	if a.Hash() == b.Hash() && a.Serialize(false) == b.Serialize(false) {
		return Ok()
	}
	return Errf("shapes differ")
}

// StructField is a named, typed field of a Struct (or a record-like
// member of a Class's attribute list). A process-wide field-name
// registry assigns each distinct field name a small positive integer
// ID; 0 is reserved for the synthetic variant-tag field (spec §3.1).
type StructField struct {
	Name string
	Type DataType
}

// ID returns the process-wide field-name id for this field's name.
func (f StructField) ID() uint32 { return fieldID(f.Name) }

func (f StructField) serialize(unpack bool) string {
	return f.Name + ": " + f.Type.Serialize(unpack)
}

func (f StructField) clone(subst Substitution) StructField {
	return StructField{Name: f.Name, Type: f.Type.Clone(subst)}
}

// VariantParameter is a named, typed constructor parameter.
type VariantParameter struct {
	Name string
	Type DataType
}

func (p VariantParameter) serialize(unpack bool) string {
	return p.Name + ": " + p.Type.Serialize(unpack)
}

func (p VariantParameter) clone(subst Substitution) VariantParameter {
	return VariantParameter{Name: p.Name, Type: p.Type.Clone(subst)}
}
