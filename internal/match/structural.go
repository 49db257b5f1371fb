package match

import "github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"

// matchVariant implements the asymmetric variant/constructor
// subsumption rule (spec §4.4): a constructor value satisfies its own
// parent variant type, but a variant type never satisfies a specific
// constructor (you cannot assign the general sum type where a single
// tagged case is required).
func matchVariant(expected, actual dtype.DataType) (dtype.Result, bool) {
	actualCtor, actualIsCtor := actual.(*dtype.VariantConstructorType)

	if expectedVariant, ok := expected.(*dtype.VariantType); ok {
		if !actualIsCtor {
			return dtype.Result{}, false
		}
		if actualCtor.Parent == expectedVariant {
			return dtype.Ok(), true
		}
		return dtype.Errf("constructor %s does not belong to variant %s", actualCtor.Shortname(), expectedVariant.Path), true
	}

	if _, ok := expected.(*dtype.VariantConstructorType); ok && actualIsCtor {
		return dtype.Errf("a variant's general constructor cannot satisfy a specific constructor type"), true
	}

	return dtype.Result{}, false
}

// matchInterfaceWidth implements interface width-subtyping (spec
// §4.4): expected is an interface (or a Join's synthesized interface),
// and actual satisfies it if actual's available method set is a
// superset, each matching by name, parameter shape, and covariant
// return type.
func matchInterfaceWidth(ctx dtype.Context, expected, actual dtype.DataType, strict bool) (dtype.Result, bool) {
	wantMethods, ok := interfaceMethodsOf(expected)
	if !ok {
		return dtype.Result{}, false
	}

	haveMethods, ok := availableMethodsOf(actual)
	if !ok {
		return dtype.Errf("%s exposes no methods to satisfy an interface", actual.Shortname()), true
	}

	if strict && len(haveMethods) != len(wantMethods) {
		return dtype.Errf("%s exposes %d methods, expected %d", actual.Shortname(), len(haveMethods), len(wantMethods)), true
	}

	for _, want := range wantMethods {
		found := false
		for _, have := range haveMethods {
			if have.Name == want.Name && methodSatisfies(ctx, have, want, strict) {
				found = true
				break
			}
		}
		if !found {
			return dtype.Errf("missing method %s required by interface", want.Name), true
		}
	}
	return dtype.Ok(), true
}

func interfaceMethodsOf(t dtype.DataType) ([]*dtype.InterfaceMethod, bool) {
	switch v := t.(type) {
	case *dtype.InterfaceType:
		return v.AllMethods(), true
	case *dtype.JoinType:
		if v.Synthesized != nil {
			return v.Synthesized.Methods, true
		}
	}
	return nil, false
}

func availableMethodsOf(t dtype.DataType) ([]*dtype.InterfaceMethod, bool) {
	switch v := t.(type) {
	case *dtype.ClassType:
		methods := append([]*dtype.InterfaceMethod(nil), v.Methods...)
		for _, s := range v.Supers {
			if more, ok := availableMethodsOf(s); ok {
				methods = append(methods, more...)
			}
		}
		return methods, true
	case *dtype.InterfaceType:
		return v.AllMethods(), true
	case *dtype.JoinType:
		if v.Synthesized != nil {
			return v.Synthesized.Methods, true
		}
	}
	return nil, false
}

// methodSatisfies reports whether have can stand in for want: same
// parameter count and types, and a return type covariant with want's
// (have's return type may narrow what want promises).
func methodSatisfies(ctx dtype.Context, have, want *dtype.InterfaceMethod, strict bool) bool {
	if len(have.Signature.Params) != len(want.Signature.Params) {
		return false
	}
	for i := range want.Signature.Params {
		if have.Signature.Params[i].Type.Hash() != want.Signature.Params[i].Type.Hash() {
			return false
		}
	}
	return Match(ctx, want.Signature.ReturnType, have.Signature.ReturnType, strict).OK
}

// matchStructural covers the remaining structural aggregates: arrays,
// tuples (elementwise), structs (expected's named fields must all be
// present and compatible; non-strictly actual may carry extra fields —
// width subtyping for records — while strict mode requires equal field
// counts), and function types (contravariant parameters, covariant
// return).
func matchStructural(ctx dtype.Context, expected, actual dtype.DataType, strict bool) (dtype.Result, bool) {
	switch e := expected.(type) {
	case *dtype.ArrayType:
		a, ok := actual.(*dtype.ArrayType)
		if !ok {
			return dtype.Errf("expected an array"), true
		}
		return Match(ctx, e.Elem, a.Elem, strict), true

	case *dtype.TupleType:
		a, ok := actual.(*dtype.TupleType)
		if !ok || len(a.Elems) != len(e.Elems) {
			return dtype.Errf("expected a %d-tuple", len(e.Elems)), true
		}
		for i := range e.Elems {
			if r := Match(ctx, e.Elems[i], a.Elems[i], strict); !r.OK {
				return dtype.Errf("tuple element %d: %s", i, r.Message), true
			}
		}
		return dtype.Ok(), true

	case *dtype.StructType:
		a, ok := actual.(*dtype.StructType)
		if !ok {
			return dtype.Errf("expected a struct"), true
		}
		if strict && len(a.Fields) != len(e.Fields) {
			return dtype.Errf("struct has %d fields, expected %d", len(a.Fields), len(e.Fields)), true
		}
		for _, f := range e.Fields {
			af, ok := a.Field(f.Name)
			if !ok {
				return dtype.Errf("missing field %s", f.Name), true
			}
			if r := Match(ctx, f.Type, af.Type, strict); !r.OK {
				return dtype.Errf("field %s: %s", f.Name, r.Message), true
			}
		}
		return dtype.Ok(), true

	case *dtype.FunctionType:
		a, ok := actual.(*dtype.FunctionType)
		if !ok || len(a.Params) != len(e.Params) {
			return dtype.Errf("expected a function with %d parameters", len(e.Params)), true
		}
		for i := range e.Params {
			if a.Params[i].IsMutable != e.Params[i].IsMutable {
				return dtype.Errf("parameter %d: mutability flag does not match", i), true
			}
			if r := Match(ctx, a.Params[i].Type, e.Params[i].Type, strict); !r.OK {
				return dtype.Errf("parameter %d: %s", i, r.Message), true
			}
		}
		if _, ok := e.ReturnType.(*dtype.UnsetType); ok {
			return dtype.Ok(), true
		}
		if r := Match(ctx, e.ReturnType, a.ReturnType, strict); !r.OK {
			return dtype.Errf("return type: %s", r.Message), true
		}
		return dtype.Ok(), true

	case *dtype.ClassType:
		a, ok := actual.(*dtype.ClassType)
		if !ok {
			return dtype.Errf("expected a class"), true
		}
		if strict && len(a.Attributes) != len(e.Attributes) {
			return dtype.Errf("class %s has %d attributes, expected %d", a.Path, len(a.Attributes), len(e.Attributes)), true
		}
		for _, attr := range e.Attributes {
			af, ok := a.Field(attr.Name)
			if !ok {
				return dtype.Errf("missing attribute %s on class %s", attr.Name, a.Path), true
			}
			if r := Match(ctx, attr.Type, af.Type, strict); !r.OK {
				return dtype.Errf("attribute %s: %s", attr.Name, r.Message), true
			}
		}
		if strict && len(a.Methods) != len(e.Methods) {
			return dtype.Errf("class %s has %d methods, expected %d", a.Path, len(a.Methods), len(e.Methods)), true
		}
		for _, want := range e.Methods {
			found := false
			for _, have := range a.Methods {
				if have.Name == want.Name && methodSatisfies(ctx, have, want, strict) {
					found = true
					break
				}
			}
			if !found {
				return dtype.Errf("class %s is missing a method matching %s", a.Path, want.Name), true
			}
		}
		return dtype.Ok(), true

	case *dtype.EnumType:
		if _, ok := actual.(*dtype.LiteralIntType); ok && !strict {
			return dtype.Ok(), true
		}
		a, ok := actual.(*dtype.EnumType)
		if !ok {
			return dtype.Errf("expected an enum"), true
		}
		if len(a.Fields) != len(e.Fields) {
			return dtype.Errf("enum has %d fields, expected %d", len(a.Fields), len(e.Fields)), true
		}
		for i := range e.Fields {
			if e.Fields[i].Name != a.Fields[i].Name || e.Fields[i].Value != a.Fields[i].Value {
				return dtype.Errf("enum field %d: %s=%d does not match %s=%d",
					i, a.Fields[i].Name, a.Fields[i].Value, e.Fields[i].Name, e.Fields[i].Value), true
			}
		}
		return dtype.Ok(), true
	}
	return dtype.Result{}, false
}
