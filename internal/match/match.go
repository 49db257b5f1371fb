// Package match implements type compatibility: the `is`-style
// assignability check (non-strict, spec §4.4) and the `==`-style
// identity check (strict), both funneled through the single entry
// point Match so the two differ only in how far numeric widening and
// structural subsumption are allowed to go.
package match

import (
	"fmt"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// Match reports whether actual may be used where expected is required.
// strict=false is assignability (numeric widening, interface width
// subtyping, nullable absorption, constructor-to-variant subsumption);
// strict=true collapses all of that to near-identity, used for
// operator overload resolution and exhaustiveness checks where the
// language wants no silent coercion (spec §4.4).
func Match(ctx dtype.Context, expected, actual dtype.DataType, strict bool) dtype.Result {
	expected, actual = derefReference(ctx, expected), derefReference(ctx, actual)
	if expected == nil || actual == nil {
		return dtype.Errf("cannot match an unresolved reference")
	}

	key := fmt.Sprintf("%d:%d:%t", expected.Hash(), actual.Hash(), strict)
	if ctx.MatchGuard().Enter(key) {
		// Re-entrant: this exact (expected, actual, strict) triple is
		// already being checked higher up the call stack. Per spec
		// §4.2/§4.6's cycle-break discipline, assume compatibility and
		// let the outer call's other checks carry the verdict.
		return dtype.Ok()
	}
	defer ctx.MatchGuard().Exit(key)

	if cached, ok := ctx.Memo().Get(key); ok {
		return cached
	}

	result := matchUncached(ctx, expected, actual, strict)
	ctx.Memo().Set(key, result)
	return result
}

func matchUncached(ctx dtype.Context, expected, actual dtype.DataType, strict bool) dtype.Result {
	if expected.Hash() == actual.Hash() {
		return dtype.Ok()
	}

	switch expected.Kind() {
	case dtype.KindUnion, dtype.KindUnset, dtype.KindGeneric, dtype.KindFFIMethod:
		msg := fmt.Sprintf("internal: %s type reached matcher", expected.Kind())
		_ = ctx.Errors().Raise(errors.New(errors.TYP006, msg, expected.Location()))
		return dtype.Errf("%s", msg)
	}

	if en, ok := expected.(*dtype.NullableType); ok {
		if actual.Kind() == dtype.KindNull {
			return dtype.Ok()
		}
		if an, ok := actual.(*dtype.NullableType); ok {
			return Match(ctx, en.Inner, an.Inner, strict)
		}
		return Match(ctx, en.Inner, actual, strict)
	}
	if _, ok := actual.(*dtype.NullableType); ok {
		return dtype.Errf("nullable %s cannot be used where non-nullable %s is required", actual.Shortname(), expected.Shortname())
	}

	if result, handled := matchNumeric(ctx, expected, actual, strict); handled {
		return result
	}

	if result, handled := matchVariant(expected, actual); handled {
		return result
	}

	if result, handled := matchInterfaceWidth(ctx, expected, actual, strict); handled {
		return result
	}

	if result, handled := matchStructural(ctx, expected, actual, strict); handled {
		return result
	}

	return dtype.Errf("%s is not compatible with %s", actual.Serialize(false), expected.Serialize(false))
}

func derefReference(ctx dtype.Context, t dtype.DataType) dtype.DataType {
	ref, ok := t.(*dtype.ReferenceType)
	if !ok {
		return t
	}
	resolved, ok := ref.ResolvedBase()
	if !ok {
		return nil
	}
	return derefReference(ctx, resolved)
}
