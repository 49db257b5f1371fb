// Package cache holds the generic-instantiation cache (spec §4.5,
// §9's open question on memoizing instantiations): a DeclaredType
// remembers its own generic parameter names and its one canonical,
// still-generic DataType body, and lazily builds (and reuses) a
// substituted copy per distinct combination of concrete type
// arguments it is referenced with.
package cache

import (
	"strings"
	"sync"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
)

// DeclaredType is what Context.Lookup returns for a class, interface,
// variant, or function declaration (spec §4.3 step 2's "declared
// type" symbol kind).
type DeclaredType struct {
	Path              string
	GenericParameters []string
	Type              dtype.DataType
	ConcreteTypes     *InstantiationCache
}

// NewDeclaredType wraps a (possibly generic) declaration body with a
// fresh, empty instantiation cache.
func NewDeclaredType(path string, generics []string, body dtype.DataType) *DeclaredType {
	return &DeclaredType{
		Path:              path,
		GenericParameters: generics,
		Type:              body,
		ConcreteTypes:     NewInstantiationCache(),
	}
}

// SymbolKind implements dtype.Symbol.
func (d *DeclaredType) SymbolKind() dtype.SymbolKind { return dtype.SymbolDeclaredType }

// IsGeneric reports whether this declaration takes type parameters.
func (d *DeclaredType) IsGeneric() bool { return len(d.GenericParameters) > 0 }

// Instantiate returns the type obtained by substituting args for this
// declaration's generic parameters, in order, reusing a previously
// cached instantiation when the same argument signature was seen
// before (spec §4.5's memoization of "identical generic
// instantiations").
func (d *DeclaredType) Instantiate(args []dtype.DataType) (dtype.DataType, error) {
	if !d.IsGeneric() {
		return d.Type, nil
	}
	if len(args) != len(d.GenericParameters) {
		return nil, &arityError{Path: d.Path, Want: len(d.GenericParameters), Got: len(args)}
	}
	key := CanonicalSignature(args)
	if cached, ok := d.ConcreteTypes.Get(key); ok {
		return cached, nil
	}
	subst := make(dtype.Substitution, len(args))
	for i, name := range d.GenericParameters {
		subst[name] = args[i]
	}
	instance := d.Type.Clone(subst)
	d.ConcreteTypes.Set(key, instance)
	return instance, nil
}

type arityError struct {
	Path     string
	Want, Got int
}

func (e *arityError) Error() string {
	return e.Path + ": expected arity mismatch"
}

// CanonicalSignature derives the instantiation cache's lookup key from
// a list of concrete type arguments: their structural serializations
// joined in argument order, since two instantiations with the same
// serialized arguments in the same order must produce the same
// substituted type (spec §3.3).
func CanonicalSignature(args []dtype.DataType) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Serialize(false)
	}
	return strings.Join(parts, "\x1f")
}

// InstantiationCache is a mutex-guarded map from a canonical type-
// argument signature to the already-built instantiation. One exists
// per DeclaredType, not globally, so two distinct generic declarations
// never collide even if instantiated with identically serialized
// arguments.
type InstantiationCache struct {
	mu    sync.Mutex
	store map[string]dtype.DataType
}

func NewInstantiationCache() *InstantiationCache {
	return &InstantiationCache{store: make(map[string]dtype.DataType)}
}

func (c *InstantiationCache) Get(key string) (dtype.DataType, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.store[key]
	return t, ok
}

func (c *InstantiationCache) Set(key string, t dtype.DataType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = t
}

// Size reports how many distinct instantiations have been cached
// (test/debug helper).
func (c *InstantiationCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}
