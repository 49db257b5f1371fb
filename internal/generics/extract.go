// Package generics implements the Generic Extractor (spec §4.5, C5):
// given a parametric pattern type and a concrete instance of it,
// unify them structurally in lockstep and fill in the binding
// {name -> type} for each of the pattern's declared generic
// parameters. It is one-directional — unlike internal/match, it never
// widens or coerces, it only records what a generic name was
// instantiated with at a particular call site.
package generics

import (
	"strings"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// nameSet is the small fixed set of a declaration's own generic
// parameter names, checked on every Reference/Generic node the
// traversal encounters.
type nameSet map[string]bool

func newNameSet(names []string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Extract walks pattern and concrete together and returns the
// substitution that, applied to pattern via DataType.Clone, would
// reproduce concrete's shape (spec §8's "generic extraction
// soundness" property, modulo the Join-flattening caveat it states).
// declaredGenerics names the parameters of the declaration pattern
// belongs to; any other Reference or Generic node encountered is
// structural, not a binding site.
func Extract(ctx dtype.Context, pattern, concrete dtype.DataType, declaredGenerics []string) (dtype.Substitution, error) {
	out := make(dtype.Substitution)
	names := newNameSet(declaredGenerics)
	if err := walk(ctx, pattern, concrete, names, out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(ctx dtype.Context, pattern, concrete dtype.DataType, names nameSet, out dtype.Substitution) error {
	// ExtractGuard is keyed by a single uint32 (spec §4.2/§4.6); the
	// pattern/concrete pair is folded into one value with a
	// multiplicative mix so a (pattern, concrete) cycle is
	// distinguished from a (concrete, pattern) one without needing a
	// composite key type.
	key := pattern.Hash()*2654435761 ^ concrete.Hash()
	if ctx.ExtractGuard().Enter(key) {
		// Re-entrant on a self-referential pattern (e.g. a recursive
		// struct or linked variant) — spec §4.2/§4.6's cycle-break
		// discipline applies here exactly as it does to Resolve.
		return nil
	}
	defer ctx.ExtractGuard().Exit(key)

	// A bare generic-parameter node binds directly, without requiring
	// concrete to resolve to anything first.
	if g, ok := pattern.(*dtype.GenericType); ok {
		if names[g.Name] {
			out[g.Name] = concrete
			return nil
		}
	}

	// A Reference whose first path segment names a declared generic
	// parameter binds the same way (spec §4.5: "Encountering a
	// Reference whose first path segment equals one of the declared
	// generic names writes out[name] = C").
	if r, ok := pattern.(*dtype.ReferenceType); ok {
		if first := firstSegment(r.Path); names[first] {
			out[first] = concrete
			return nil
		}
		// Otherwise the reference is structural: per spec §4.3 step 6
		// this should resolve "partial" (body kept generic, not
		// instantiated) so the extractor can keep walking into the
		// declaration's own still-parametric shape. This engine does
		// not implement a separate partial-resolution path (see
		// DESIGN.md); it resolves fully and continues the walk against
		// the instantiated body, which is sound for every case this
		// extractor is asked to handle (the body's own generics were
		// already bound by the enclosing Instantiate call).
		if err := pattern.Resolve(ctx); err != nil {
			return err
		}
		resolved, ok := r.ResolvedBase()
		if !ok {
			return ctx.Errors().Raise(errors.New(errors.TYP006, "reference did not resolve during generic extraction", r.Location()))
		}
		return walk(ctx, resolved, concrete, names, out)
	}

	// Dereference a concrete-side reference transparently so a pattern
	// Array(T) can unify against a concrete Reference-to-Array(u32).
	if r, ok := concrete.(*dtype.ReferenceType); ok {
		if err := concrete.Resolve(ctx); err != nil {
			return err
		}
		resolved, ok := r.ResolvedBase()
		if !ok {
			return ctx.Errors().Raise(errors.New(errors.TYP006, "reference did not resolve during generic extraction", r.Location()))
		}
		return walk(ctx, pattern, resolved, names, out)
	}

	switch p := pattern.(type) {
	case *dtype.NullableType:
		c, ok := concrete.(*dtype.NullableType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a nullable type")
		}
		return walk(ctx, p.Inner, c.Inner, names, out)

	case *dtype.ArrayType:
		c, ok := concrete.(*dtype.ArrayType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected an array type")
		}
		return walk(ctx, p.Elem, c.Elem, names, out)

	case *dtype.TupleType:
		c, ok := concrete.(*dtype.TupleType)
		if !ok || len(c.Elems) != len(p.Elems) {
			return shapeMismatch(ctx, pattern, concrete, "tuple arity mismatch")
		}
		for i := range p.Elems {
			if err := walk(ctx, p.Elems[i], c.Elems[i], names, out); err != nil {
				return err
			}
		}
		return nil

	case *dtype.StructType:
		c, ok := concrete.(*dtype.StructType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a struct type")
		}
		for _, f := range p.Fields {
			cf, ok := c.Field(f.Name)
			if !ok {
				return shapeMismatch(ctx, pattern, concrete, "missing field "+f.Name)
			}
			if err := walk(ctx, f.Type, cf.Type, names, out); err != nil {
				return err
			}
		}
		return nil

	case *dtype.ClassType:
		c, ok := concrete.(*dtype.ClassType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a class type")
		}
		for _, a := range p.Attributes {
			ca, ok := c.Field(a.Name)
			if !ok {
				return shapeMismatch(ctx, pattern, concrete, "missing attribute "+a.Name)
			}
			if err := walk(ctx, a.Type, ca.Type, names, out); err != nil {
				return err
			}
		}
		for _, m := range p.Methods {
			cm, ok := c.Method(m.Name)
			if !ok {
				return shapeMismatch(ctx, pattern, concrete, "missing method "+m.Name)
			}
			if err := walkFunction(ctx, m.Signature, cm.Signature, names, out); err != nil {
				return err
			}
		}
		return nil

	case *dtype.InterfaceType:
		c, ok := concrete.(*dtype.InterfaceType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected an interface type")
		}
		for _, m := range p.AllMethods() {
			cm, ok := c.Method(m.Name)
			if !ok {
				return shapeMismatch(ctx, pattern, concrete, "missing method "+m.Name)
			}
			if err := walkFunction(ctx, m.Signature, cm.Signature, names, out); err != nil {
				return err
			}
		}
		return nil

	case *dtype.JoinType:
		// Flatten both sides to their synthesized interface before
		// unifying (spec §8's explicit caveat: "Join flattening is
		// performed first").
		flat, ok := joinMethods(p)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "join operand did not resolve to an interface")
		}
		cFlat, ok := joinMethods(concrete)
		if !ok {
			if ci, ok := concrete.(*dtype.InterfaceType); ok {
				cFlat = ci.AllMethods()
			} else {
				return shapeMismatch(ctx, pattern, concrete, "expected an interface-shaped type")
			}
		}
		for _, m := range flat {
			found := false
			for _, cm := range cFlat {
				if cm.Name == m.Name {
					if err := walkFunction(ctx, m.Signature, cm.Signature, names, out); err != nil {
						return err
					}
					found = true
					break
				}
			}
			if !found {
				return shapeMismatch(ctx, pattern, concrete, "missing method "+m.Name)
			}
		}
		return nil

	case *dtype.VariantType:
		c, ok := concrete.(*dtype.VariantType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a variant type")
		}
		if len(p.Constructors) != len(c.Constructors) {
			return shapeMismatch(ctx, pattern, concrete, "variant constructor count mismatch")
		}
		for i, pc := range p.Constructors {
			if err := walk(ctx, pc, c.Constructors[i], names, out); err != nil {
				return err
			}
		}
		return nil

	case *dtype.VariantConstructorType:
		c, ok := concrete.(*dtype.VariantConstructorType)
		if !ok || c.Name != p.Name || len(c.Params) != len(p.Params) {
			return shapeMismatch(ctx, pattern, concrete, "constructor shape mismatch")
		}
		for i := range p.Params {
			if err := walk(ctx, p.Params[i].Type, c.Params[i].Type, names, out); err != nil {
				return err
			}
		}
		return nil

	case *dtype.FunctionType:
		c, ok := concrete.(*dtype.FunctionType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a function type")
		}
		return walkFunction(ctx, p, c, names, out)

	case *dtype.CoroutineType:
		c, ok := concrete.(*dtype.CoroutineType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a coroutine type")
		}
		return walkFunction(ctx, p.Inner, c.Inner, names, out)

	case *dtype.LockType:
		c, ok := concrete.(*dtype.LockType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a lock type")
		}
		return walk(ctx, p.Inner, c.Inner, names, out)

	case *dtype.PartialStructType:
		c, ok := concrete.(*dtype.PartialStructType)
		if !ok {
			return shapeMismatch(ctx, pattern, concrete, "expected a partial struct type")
		}
		return walk(ctx, p.Inner, c.Inner, names, out)

	case *dtype.UnionType:
		// Per spec §4.5: a union constraint is never unified against;
		// the caller is expected to have already filtered acceptable
		// instantiations through internal/match before reaching here.
		return nil

	default:
		// Scalars, enums, metatypes and anything else with no nested
		// generic-bearing structure: nothing to extract, and shape is
		// validated by whoever called Extract (normally a prior
		// internal/match.Match pass already confirmed assignability).
		return nil
	}
}

func walkFunction(ctx dtype.Context, p, c *dtype.FunctionType, names nameSet, out dtype.Substitution) error {
	if len(p.Params) != len(c.Params) {
		return shapeMismatch(ctx, p, c, "parameter count mismatch")
	}
	for i := range p.Params {
		if err := walk(ctx, p.Params[i].Type, c.Params[i].Type, names, out); err != nil {
			return err
		}
	}
	return walk(ctx, p.ReturnType, c.ReturnType, names, out)
}

func joinMethods(t dtype.DataType) ([]*dtype.InterfaceMethod, bool) {
	j, ok := t.(*dtype.JoinType)
	if !ok || j.Synthesized == nil {
		return nil, false
	}
	return j.Synthesized.Methods, true
}

func shapeMismatch(ctx dtype.Context, pattern, concrete dtype.DataType, detail string) error {
	return ctx.Errors().Raise(errors.New(errors.TYP006,
		"generic extraction shape mismatch: "+detail, pattern.Location()).
		WithData("pattern", pattern.Serialize(false)).
		WithData("concrete", concrete.Serialize(false)))
}

func firstSegment(path string) string {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return path
}
