package match

import "github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"

// AreIdentical implements spec §4.4's "Identity" paragraph:
// structural identity is strict Match in both directions collapsed to
// one call, since Match's strict mode already requires exact kind and
// exact member-count agreement rather than width-subtyping. It is the
// per-parameter comparison used by AreSignaturesIdentical; nothing in
// this module runs overload-collision detection with either function.
func AreIdentical(ctx dtype.Context, a, b dtype.DataType) bool {
	return Match(ctx, a, b, true).OK
}

// AreSignaturesIdentical compares two function signatures by their
// parameter type lists only, per spec §3.2 ("parameter type lists
// that are not structurally identical (return type ignored)"), the
// comparison a duplicate-overload check is phrased in.
func AreSignaturesIdentical(ctx dtype.Context, a, b *dtype.FunctionType) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if !AreIdentical(ctx, a.Params[i].Type, b.Params[i].Type) {
			return false
		}
	}
	return true
}

// CanCast implements spec §4.4's "Casting" paragraph: any basic
// scalar may be explicitly cast to any other basic scalar (narrowing
// included — that is the point of an explicit cast), and everything
// else falls through to strict Match (a cast that isn't a numeric
// conversion must already be an identity-compatible type, e.g.
// upcasting a class reference to one of its declared supertypes is
// not modeled: the Class rule compares attributes and methods only and
// does not consult Supers).
func CanCast(ctx dtype.Context, source, target dtype.DataType) dtype.Result {
	sb, sok := source.(*dtype.BasicType)
	tb, tok := target.(*dtype.BasicType)
	if sok && tok && dtype.IsBasic(sb.Kind()) && dtype.IsBasic(tb.Kind()) {
		return dtype.Ok()
	}
	if _, ok := source.(*dtype.LiteralIntType); ok && tok && dtype.IsBasic(tb.Kind()) {
		return dtype.Ok()
	}
	return Match(ctx, target, source, true)
}
