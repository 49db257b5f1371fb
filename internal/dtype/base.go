package dtype

import (
	"fmt"
	"sync"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// DataType is the shared interface every type-lattice variant
// implements (spec §3.1, §4.1).
type DataType interface {
	Kind() Kind
	Location() ast.Span
	Original() DataType

	// Resolve validates variant-specific invariants. Idempotent. The
	// variants that can take part in a cycle (Reference, Class,
	// Interface, Variant) recursion-guard themselves via
	// ctx.ResolveGuard(); the others simply recurse into their parts.
	Resolve(ctx Context) error

	// Shortname renders a human-readable form for diagnostics. Not
	// used for structural identity.
	Shortname() string

	// Serialize renders canonical structural text. When unpack is
	// true a Reference inlines its resolved base type; otherwise it
	// emits only its path. Structural identity uses Serialize(false).
	Serialize(unpack bool) string

	// Hash returns the 32-bit structural content hash of
	// Serialize(false), memoized after first computation.
	Hash() uint32

	// Clone produces a deep structural copy with subst applied. A
	// Reference whose first path segment is a key in subst returns
	// the substituted type directly.
	Clone(subst Substitution) DataType

	// Is performs a structural downcast check, transparently
	// dereferencing through Reference and absorbing Nullable.
	Is(ctx Context, k Kind) bool

	// To performs the same structural downcast as Is but also returns
	// the narrowed value when possible.
	To(ctx Context, k Kind) (DataType, bool)

	// AllowedNullable reports whether this type may be wrapped in
	// Nullable(...).
	AllowedNullable(ctx Context) bool
}

// Substitution maps a generic-parameter name to the concrete type
// bound to it (spec §3.3's "type-variable map").
type Substitution map[string]DataType

// Result is the outcome of a compatibility check (spec §4.4, §6).
type Result struct {
	OK      bool
	Message string
}

// Ok is the canonical successful Result.
func Ok() Result { return Result{OK: true} }

// Errf builds a failing Result with a formatted message.
func Errf(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}

// PackageID identifies the package a Context is rooted in, used by
// the two-context lookup dance of spec §4.3 step 1.
type PackageID string

// SymbolKind discriminates the handful of things a Context.Lookup can
// return: a declared type, or a namespace to unwrap through it
// (spec §4.3 step 2).
type SymbolKind int

const (
	SymbolUnknown SymbolKind = iota
	SymbolDeclaredType
	SymbolNamespace
)

// Symbol is whatever a Context.Lookup returns. Concrete
// implementations (a declared type, a namespace) live in
// internal/resolve and internal/dtype/cache, which both import this
// package, so only a small exported discriminant method is needed
// here rather than an unexported marker.
type Symbol interface {
	SymbolKind() SymbolKind
}

// ErrorSink is the Go shape of spec §6's `parser.customError`: the
// one place every core operation reports a fatal condition, instead
// of panicking.
type ErrorSink interface {
	Raise(report *errors.Report) error
}

// MemoStore is the per-Context compatibility-match memo of spec §5
// ("WeakMap<Context, Map<typeKey, Result>>"). Go has no weak maps;
// per the teacher's own design-notes answer to this (§9), the cache
// is simply owned by the Context value and discarded with it instead
// of needing weak-reference gymnastics.
type MemoStore interface {
	Get(key string) (Result, bool)
	Set(key string, result Result)
}

// Context is the external collaborator every DataType.Resolve (and
// every operation in internal/resolve, internal/match,
// internal/generics) is given. It bundles the host's symbol table
// (Lookup/CurrentPackage/ActiveClass/ActiveMethod), its error sink,
// the two recursion-guard stacks of spec §4.2/§4.6, the match memo of
// spec §5, and the reference-resolution algorithm of spec §4.3
// (implemented by internal/resolve, consumed polymorphically here so
// that ReferenceType.Resolve can call back into it without internal/
// dtype importing internal/resolve).
type Context interface {
	Lookup(name string) (Symbol, bool)
	CurrentPackage() PackageID
	ActiveClass() (DataType, bool)
	ActiveMethod() (*InterfaceMethod, bool)
	Errors() ErrorSink

	ResolveGuard() *Guard[uint32]
	ExtractGuard() *Guard[uint32]
	MatchGuard() *Guard[string]
	Memo() MemoStore

	// ResolveReference implements spec §4.3's seven-step procedure.
	ResolveReference(ref *ReferenceType) (DataType, error)

	// LiteralIntRangeCheck reports whether Match should enforce that an
	// uncommitted integer literal's byte-size hint fits the target
	// basic type's width, rather than accepting every literal
	// unconditionally (spec §9's first open question, decided in
	// DESIGN.md and exposed as a config.EngineConfig knob).
	LiteralIntRangeCheck() bool
}

// Guard is a process-wide (in practice, per-Context — see spec §5's
// segregation recommendation) recursion-guard stack keyed by a
// structural hash (for resolve/extract) or a composite match key (for
// match). Push-on-entry/pop-on-exit discipline; a pre-check consults
// the stack and returns "already in progress" if present, which the
// caller treats as a conservative OK (breaking cycles coinductively).
type Guard[K comparable] struct {
	mu     sync.Mutex
	active map[K]bool
}

// NewGuard creates an empty recursion guard.
func NewGuard[K comparable]() *Guard[K] {
	return &Guard[K]{active: make(map[K]bool)}
}

// Enter records key as in-progress. It returns true if key was
// already active (the caller should treat this as a cycle break and
// return immediately without calling Exit) and false if the caller
// now owns the entry and must call Exit when done.
func (g *Guard[K]) Enter(key K) (alreadyActive bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active[key] {
		return true
	}
	g.active[key] = true
	return false
}

// Exit releases key. Only the goroutine whose Enter returned false
// for this key may call Exit.
func (g *Guard[K]) Exit(key K) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}

// base holds the fields every DataType variant shares: source
// location, an optional declaration context (consulted by resolvers),
// the "original" back-link set when a Reference is dereferenced (used
// solely for diagnostics, spec §3.1), and the lazily computed
// structural hash.
type base struct {
	span     ast.Span
	declCtx  Context
	original DataType

	hashOnce sync.Once
	hashVal  uint32
}

func (b *base) Location() ast.Span  { return b.span }
func (b *base) Original() DataType  { return b.original }
func (b *base) setOriginal(o DataType) { b.original = o }

// resetHash clears the memoized hash. Nothing in the package calls
// it: Clone builds a fresh base for the copy rather than reusing this
// one, so a live, already-resolved type never has its hash reset
// (spec §3.3: types are immutable post-resolution except for this
// memo and the original back-link).
func (b *base) resetHash() {
	b.hashOnce = sync.Once{}
}
