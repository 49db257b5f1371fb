package resolve

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype/cache"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// Resolve implements spec §4.3's reference-resolution procedure:
//
//  1. split the reference's dotted path into segments, NFC-normalizing
//     each (so a name typed with a precomposed accent matches one typed
//     with a combining sequence, spec §9);
//  2. look up the first segment via the two-context rule (ambient scope
//     first, current package second);
//  3. while the looked-up symbol is a Namespace and segments remain,
//     switch into that namespace's package and consume the next
//     segment as a direct scope lookup (no more ambient fallback once
//     inside a foreign namespace);
//  4. once a DeclaredType is found, instantiate the declaration's body
//     against the reference's type arguments, checking arity;
//  5. consume any remaining single segment as a variant-constructor
//     name on the instantiated body.
func Resolve(ctx *Context, ref *dtype.ReferenceType) (dtype.DataType, error) {
	segments := splitPath(ref.Path)
	if len(segments) == 0 {
		return nil, ctx.sink.Raise(errors.New(errors.TYP001, "empty reference path", ref.Location()))
	}

	sym, ok := ctx.Lookup(segments[0])
	if !ok {
		return nil, ctx.sink.Raise(errors.New(errors.TYP001, "unknown name: "+segments[0], ref.Location()).
			WithData("name", segments[0]))
	}
	rest := segments[1:]

	cur := ctx
	for {
		ns, isNamespace := sym.(*Namespace)
		if !isNamespace {
			break
		}
		if len(rest) == 0 {
			return nil, ctx.sink.Raise(errors.New(errors.TYP002, "namespace used where a declared type was expected: "+ns.Path, ref.Location()))
		}
		cur = cur.InPackage(ns.Package)
		next := rest[0]
		rest = rest[1:]
		sym, ok = cur.registry.Scope(ns.Package).Lookup(next)
		if !ok {
			return nil, ctx.sink.Raise(errors.New(errors.TYP001, "unknown name: "+next, ref.Location()).
				WithData("name", next))
		}
	}

	decl, ok := sym.(*cache.DeclaredType)
	if !ok {
		return nil, ctx.sink.Raise(errors.New(errors.TYP002, "not a declared type: "+segments[0], ref.Location()))
	}

	base, err := decl.Instantiate(ref.TypeArgs)
	if err != nil {
		return nil, ctx.sink.Raise(errors.New(errors.TYP003, "type argument arity mismatch for "+decl.Path, ref.Location()).
			WithData("want", len(decl.GenericParameters)).
			WithData("got", len(ref.TypeArgs)))
	}

	if len(rest) == 0 {
		return base, nil
	}
	if len(rest) > 1 {
		return nil, ctx.sink.Raise(errors.New(errors.TYP001, "unexpected trailing path segments after "+decl.Path, ref.Location()))
	}

	variant, ok := base.(*dtype.VariantType)
	if !ok {
		return nil, ctx.sink.Raise(errors.New(errors.TYP002, "path segment "+rest[0]+" requires a variant type", ref.Location()))
	}
	ctor, ok := variant.Constructor(rest[0])
	if !ok {
		return nil, ctx.sink.Raise(errors.New(errors.TYP009, "no constructor named "+rest[0]+" on variant "+variant.Path, ref.Location()).
			WithData("constructor", rest[0]).
			WithData("variant", variant.Path))
	}
	return ctor, nil
}

func splitPath(path string) []string {
	raw := strings.Split(path, ".")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		segments = append(segments, norm.NFC.String(s))
	}
	return segments
}
