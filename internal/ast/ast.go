// Package ast provides the minimal source-location types shared by the
// type core. Full AST node construction (expressions, statements,
// declarations) belongs to the parser, which is an external collaborator
// per the core's scope and is not part of this package.
package ast

import "fmt"

// Pos represents a single point in source code.
type Pos struct {
	Line   int
	Column int
	File   string
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span represents a range in source code. It is the concrete form of the
// "SymbolLocation" referenced throughout the type core: every DataType,
// every raised error, and every resolved Reference carries one.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	if s.Start.File == "" {
		return "<unknown>"
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", s.Start.File, s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.Start.File, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Unknown is the zero-value span used when a type is synthesized by the
// engine itself (e.g. a joined interface) rather than parsed from source.
var Unknown = Span{}
