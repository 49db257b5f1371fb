package dtype

import (
	"strings"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// JoinType combines two interface-like types into the interface that
// implements both (spec §3.1 "structural combinators"). Both operands
// must resolve to Interface or another Join; the combined method set
// is synthesized once during Resolve and cached on Synthesized.
type JoinType struct {
	base
	Left, Right DataType
	Synthesized *InterfaceType
}

func NewJoin(left, right DataType, span ast.Span) *JoinType {
	return &JoinType{base: base{span: span}, Left: left, Right: right}
}

func (t *JoinType) Kind() Kind { return KindJoin }

func (t *JoinType) Resolve(ctx Context) error {
	if err := t.Left.Resolve(ctx); err != nil {
		return err
	}
	if err := t.Right.Resolve(ctx); err != nil {
		return err
	}
	leftMethods, ok := interfaceMethodsOf(t.Left)
	if !ok {
		return ctx.Errors().Raise(errors.New(errors.TYP006, "join operand must resolve to an interface or another join", t.Left.Location()))
	}
	rightMethods, ok := interfaceMethodsOf(t.Right)
	if !ok {
		return ctx.Errors().Raise(errors.New(errors.TYP006, "join operand must resolve to an interface or another join", t.Right.Location()))
	}
	combined := append(append([]*InterfaceMethod(nil), leftMethods...), rightMethods...)
	t.Synthesized = &InterfaceType{base: base{span: t.span}, Path: t.Serialize(false), Methods: combined}
	return nil
}

func interfaceMethodsOf(d DataType) ([]*InterfaceMethod, bool) {
	switch v := d.(type) {
	case *InterfaceType:
		return v.AllMethods(), true
	case *JoinType:
		if v.Synthesized != nil {
			return v.Synthesized.Methods, true
		}
	}
	return nil, false
}

func (t *JoinType) Shortname() string { return t.Left.Shortname() + " & " + t.Right.Shortname() }

func (t *JoinType) Serialize(unpack bool) string {
	return t.Left.Serialize(unpack) + " & " + t.Right.Serialize(unpack)
}

func (t *JoinType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *JoinType) Clone(subst Substitution) DataType {
	return &JoinType{base: base{span: t.span, declCtx: t.declCtx}, Left: t.Left.Clone(subst), Right: t.Right.Clone(subst)}
}

func (t *JoinType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *JoinType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *JoinType) AllowedNullable(ctx Context) bool       { return true }

// UnionType lists the alternatives a generic parameter may be bound
// to. It is never itself the type of a value; it only appears inside a
// generic parameter's constraint list and is consumed by
// internal/generics during extraction (spec §3.1 "Union ... used only
// in generic constraints"). Resolving one that has escaped into
// ordinary type position is a hard internal error (TYP006), since no
// legal type expression in the grammar can produce that outside
// constraint position.
type UnionType struct {
	base
	Members []DataType
}

func NewUnion(members []DataType, span ast.Span) *UnionType {
	return &UnionType{base: base{span: span}, Members: members}
}

func (t *UnionType) Kind() Kind { return KindUnion }

func (t *UnionType) Resolve(ctx Context) error {
	return ctx.Errors().Raise(errors.New(errors.TYP006, "union type reached resolution outside a generic constraint", t.span))
}

func (t *UnionType) Shortname() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.Shortname()
	}
	return strings.Join(parts, " | ")
}

func (t *UnionType) Serialize(unpack bool) string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.Serialize(unpack)
	}
	return strings.Join(parts, " | ")
}

func (t *UnionType) Hash() uint32 {
	t.hashOnce.Do(func() { t.hashVal = hashString(t.Serialize(false)) })
	return t.hashVal
}

func (t *UnionType) Clone(subst Substitution) DataType {
	members := make([]DataType, len(t.Members))
	for i, m := range t.Members {
		members[i] = m.Clone(subst)
	}
	return &UnionType{base: base{span: t.span, declCtx: t.declCtx}, Members: members}
}

func (t *UnionType) Is(ctx Context, k Kind) bool            { return isKind(ctx, t, k) }
func (t *UnionType) To(ctx Context, k Kind) (DataType, bool) { return toKind(ctx, t, k) }
func (t *UnionType) AllowedNullable(ctx Context) bool       { return false }

// Satisfies reports whether candidate matches one of the union's
// member shapes by Hash equality, a cheap structural check for a
// generic argument against a Union constraint (full compatibility
// goes through internal/match). internal/generics does not call it;
// Extract skips Union patterns without checking them.
func (t *UnionType) Satisfies(candidate DataType) bool {
	for _, m := range t.Members {
		if m.Hash() == candidate.Hash() {
			return true
		}
	}
	return false
}
