package dtype

// isKind and toKind implement the shared structural-downcast semantics
// of spec §4.1 that every DataType.Is/To delegates to: a direct Kind
// match always succeeds; a Reference transparently dereferences into
// its resolved base type; a Nullable absorbs — is() of the target kind
// succeeds on a Nullable wrapping it, while to() unwraps one layer and
// retries. Both guard against an unresolved Reference by simply
// failing rather than triggering resolution as a side effect, since Is
// and To are read-only queries invoked after resolution has already
// run.

func isKind(ctx Context, t DataType, k Kind) bool {
	if t.Kind() == k {
		return true
	}
	switch v := t.(type) {
	case *ReferenceType:
		if base, ok := v.resolvedBase(); ok {
			return isKind(ctx, base, k)
		}
		return false
	case *NullableType:
		return isKind(ctx, v.Inner, k)
	}
	return false
}

func toKind(ctx Context, t DataType, k Kind) (DataType, bool) {
	if t.Kind() == k {
		return t, true
	}
	switch v := t.(type) {
	case *ReferenceType:
		if base, ok := v.resolvedBase(); ok {
			return toKind(ctx, base, k)
		}
	case *NullableType:
		return toKind(ctx, v.Inner, k)
	}
	return nil, false
}
