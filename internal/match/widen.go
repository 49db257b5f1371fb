package match

import "github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"

// matchNumeric applies spec §4.4's numeric rules: an uncommitted
// integer literal matches any basic numeric kind outright (it has not
// yet picked a concrete width), while two committed basic scalars
// match under strict equality or, non-strictly, under the kind's
// canonical widening order.
func matchNumeric(ctx dtype.Context, expected, actual dtype.DataType, strict bool) (dtype.Result, bool) {
	if lit, ok := actual.(*dtype.LiteralIntType); ok {
		eb, ok := expected.(*dtype.BasicType)
		if !ok || !dtype.IsBasic(eb.Kind()) {
			return dtype.Result{}, false
		}
		if ctx.LiteralIntRangeCheck() && lit.ByteSizeHint > 0 {
			if width := dtype.ByteWidth(eb.Kind()); width > 0 && lit.ByteSizeHint > width {
				return dtype.Errf("integer literal requiring %d bytes does not fit %s", lit.ByteSizeHint, eb.Kind()), true
			}
		}
		return dtype.Ok(), true
	}

	ab, aok := actual.(*dtype.BasicType)
	eb, eok := expected.(*dtype.BasicType)
	if !aok || !eok || !dtype.IsBasic(ab.Kind()) || !dtype.IsBasic(eb.Kind()) {
		return dtype.Result{}, false
	}

	if strict {
		if eb.Kind() == ab.Kind() {
			return dtype.Ok(), true
		}
		return dtype.Errf("%s is not identical to %s", ab.Kind(), eb.Kind()), true
	}
	if dtype.WidensTo(ab.Kind(), eb.Kind()) {
		return dtype.Ok(), true
	}
	return dtype.Errf("%s does not widen to %s", ab.Kind(), eb.Kind()), true
}
