package resolve

import (
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/config"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
)

// Context is the concrete implementation of dtype.Context: it owns the
// symbol-table registry, the current and ambient lookup scopes of
// spec §4.3 step 1's two-context rule, the active class/method
// (stored and returned by ActiveClass/ActiveMethod; Resolve does not
// read them), the error sink, and the three
// recursion guards plus the match memo threaded through resolve,
// match, and generics.
type Context struct {
	registry *Registry
	current  dtype.PackageID
	ambient  *Scope

	activeClass  dtype.DataType
	activeMethod *dtype.InterfaceMethod

	sink dtype.ErrorSink
	cfg  *config.EngineConfig

	resolveGuard *dtype.Guard[uint32]
	extractGuard *dtype.Guard[uint32]
	matchGuard   *dtype.Guard[string]
	memo         *Memo
}

// NewContext builds a root Context for a package, with fresh recursion
// guards and match memo (one run's worth, per spec §5's recommendation
// that these be segregated per type-checking pass rather than shared
// globally), using the engine's default configuration.
func NewContext(registry *Registry, current dtype.PackageID, sink dtype.ErrorSink) *Context {
	return NewContextWithConfig(registry, current, sink, config.Default())
}

// NewContextWithConfig is NewContext with an explicit, possibly
// YAML-loaded EngineConfig (spec §9's open-question knobs).
func NewContextWithConfig(registry *Registry, current dtype.PackageID, sink dtype.ErrorSink, cfg *config.EngineConfig) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		registry:     registry,
		current:      current,
		sink:         sink,
		cfg:          cfg,
		resolveGuard: dtype.NewGuard[uint32](),
		extractGuard: dtype.NewGuard[uint32](),
		matchGuard:   dtype.NewGuard[string](),
		memo:         NewMemo(),
	}
}

func (c *Context) LiteralIntRangeCheck() bool { return c.cfg.LiteralIntRangeCheck }

// WithAmbient returns a shallow copy of c whose Lookup consults scope
// before the current package's own scope — the "usage context" of
// spec §4.3 step 1, so names in scope shadow package-level names.
// Nothing in this module calls it; a Context built by NewContext has
// no ambient scope.
func (c *Context) WithAmbient(scope *Scope) *Context {
	cp := *c
	cp.ambient = scope
	return &cp
}

// WithActive returns a shallow copy of c with the active class/method
// set, as reported by ActiveClass/ActiveMethod. Nothing in this
// module calls it, and Resolve does not treat `self`/`This` specially.
func (c *Context) WithActive(class dtype.DataType, method *dtype.InterfaceMethod) *Context {
	cp := *c
	cp.activeClass = class
	cp.activeMethod = method
	return &cp
}

// InPackage returns a shallow copy of c switched to a different
// current package, used while walking through a namespace mid-path
// (spec §4.3 step 2).
func (c *Context) InPackage(pkg dtype.PackageID) *Context {
	cp := *c
	cp.current = pkg
	cp.ambient = nil
	return &cp
}

func (c *Context) Lookup(name string) (dtype.Symbol, bool) {
	if c.ambient != nil {
		if sym, ok := c.ambient.Lookup(name); ok {
			return sym, true
		}
	}
	return c.registry.Scope(c.current).Lookup(name)
}

func (c *Context) CurrentPackage() dtype.PackageID { return c.current }

func (c *Context) ActiveClass() (dtype.DataType, bool) {
	if c.activeClass == nil {
		return nil, false
	}
	return c.activeClass, true
}

func (c *Context) ActiveMethod() (*dtype.InterfaceMethod, bool) {
	if c.activeMethod == nil {
		return nil, false
	}
	return c.activeMethod, true
}

func (c *Context) Errors() dtype.ErrorSink { return c.sink }

func (c *Context) ResolveGuard() *dtype.Guard[uint32] { return c.resolveGuard }
func (c *Context) ExtractGuard() *dtype.Guard[uint32] { return c.extractGuard }
func (c *Context) MatchGuard() *dtype.Guard[string]   { return c.matchGuard }
func (c *Context) Memo() dtype.MemoStore              { return c.memo }

func (c *Context) ResolveReference(ref *dtype.ReferenceType) (dtype.DataType, error) {
	return Resolve(c, ref)
}

// Registry exposes the underlying symbol-table registry to a host
// that wires up a run from its own declarations.
func (c *Context) Registry() *Registry { return c.registry }
