// Package resolve implements reference resolution (spec §4.3): the
// concrete Context the dtype package's Context interface describes,
// a symbol table keyed by package, and the namespace-unwrapping path
// walk that turns a ReferenceType's dotted path into a concrete
// DataType.
package resolve

import "github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"

// Namespace is a Symbol that groups further symbols under a path
// prefix — a module, or an FFI binding's enclosing block (spec §4.3
// step 2, "unwrap through namespaces").
type Namespace struct {
	Path    string
	Package dtype.PackageID
}

// SymbolKind implements dtype.Symbol.
func (n *Namespace) SymbolKind() dtype.SymbolKind { return dtype.SymbolNamespace }
